package handlers

import "net/http"

// Minimal login form; the dashboard frontend normally replaces this, but
// the gate needs a real page to land on.
const loginPage = `<!doctype html>
<html>
<head><title>Sign in</title></head>
<body>
<form id="login">
<input name="username" placeholder="username" autocomplete="username">
<input name="password" type="password" placeholder="password" autocomplete="current-password">
<button type="submit">Sign in</button>
<p id="err" style="color:red"></p>
</form>
<script>
document.getElementById("login").addEventListener("submit", async (e) => {
	e.preventDefault();
	const form = new FormData(e.target);
	const res = await fetch("/api/auth/login", {
		method: "POST",
		headers: {"Content-Type": "application/json"},
		body: JSON.stringify({username: form.get("username"), password: form.get("password")}),
	});
	if (res.ok) {
		const next = new URLSearchParams(location.search).get("next") || "/";
		location.assign(next);
		return;
	}
	const body = await res.json().catch(() => ({}));
	document.getElementById("err").textContent = body.error || "login failed";
});
</script>
</body>
</html>
`

func LoginPage(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(loginPage))
}
