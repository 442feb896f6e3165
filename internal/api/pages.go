package api

import "fmt"

// loginPageHTML is the self-contained page shown to unauthenticated visitors
// of the document area. It only posts the password to /api/login and reloads
// on success; nothing sensitive ships with it.
const loginPageHTML = `<!doctype html><html lang="fr"><head>
  <meta charset="utf-8"/><meta name="viewport" content="width=device-width,initial-scale=1"/>
  <title>Espace colistiers</title>
  <style>
    body{font-family:system-ui,-apple-system,Segoe UI,Roboto,Arial,sans-serif;background:#0b1220;color:#e5e7eb;margin:0;display:grid;place-items:center;min-height:100vh;padding:24px}
    .card{background:#111827;border:1px solid rgba(255,255,255,.08);border-radius:18px;padding:22px;max-width:420px;width:100%;box-shadow:0 20px 60px rgba(0,0,0,.45)}
    h1{font-size:20px;margin:0 0 8px}
    p{margin:0 0 14px;color:#cbd5e1;line-height:1.4}
    input,button{width:100%;padding:12px 14px;border-radius:12px;border:1px solid rgba(255,255,255,.12);background:#0b1220;color:#e5e7eb;font-size:16px}
    button{margin-top:10px;background:#2563eb;border:none;font-weight:700;cursor:pointer}
    .err{color:#f87171;margin-top:10px;display:none}
  </style>
</head><body>
  <div class="card">
    <h1>Espace colistiers</h1>
    <p>Accès protégé. Entrez le mot de passe.</p>
    <form id="f">
      <input id="p" type="password" placeholder="Mot de passe" autocomplete="off" required>
      <button type="submit">Se connecter</button>
      <div id="e" class="err">Mot de passe incorrect</div>
    </form>
  </div>
  <script>
    const f=document.getElementById('f'), p=document.getElementById('p'), e=document.getElementById('e');
    f.addEventListener('submit', async (ev) => {
      ev.preventDefault(); e.style.display='none';
      const r = await fetch('/api/login', {
        method:'POST',
        headers:{'Content-Type':'application/json'},
        body: JSON.stringify({ password: p.value })
      });
      if(r.ok){ location.reload(); }
      else { e.style.display='block'; p.value=''; p.focus(); }
    });
  </script>
</body></html>`

// adminPage renders the /resultats summary with the response count and the
// CSV download link.
func adminPage(count int) string {
	plural := ""
	if count != 1 {
		plural = "s"
	}
	return fmt.Sprintf(`<!DOCTYPE html>
<html lang="fr">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>Administration - Résultats | Chantraine À-Venir</title>
  <meta name="robots" content="noindex, nofollow">
  <style>
    *, *::before, *::after { box-sizing: border-box; margin: 0; padding: 0; }
    body {
      font-family: system-ui, sans-serif;
      background: #f1f5f9;
      color: #1e293b;
      min-height: 100vh;
      display: flex;
      flex-direction: column;
      align-items: center;
      justify-content: center;
      padding: 2rem;
    }
    .admin-card {
      background: #fff;
      border-radius: 1rem;
      box-shadow: 0 4px 24px rgba(0,0,0,.08);
      padding: 2.5rem;
      max-width: 480px;
      width: 100%%;
      text-align: center;
    }
    .admin-card h1 { font-size: 1.5rem; font-weight: 700; margin-bottom: .5rem; color: #1e3a5f; }
    .admin-card .subtitle { color: #64748b; font-size: .95rem; margin-bottom: 2rem; }
    .stat { font-size: 3rem; font-weight: 800; color: #3b82f6; line-height: 1; margin-bottom: .25rem; }
    .stat-label { color: #64748b; font-size: .875rem; margin-bottom: 2rem; }
    .btn {
      display: inline-block;
      padding: .875rem 2rem;
      font-size: 1rem;
      font-weight: 600;
      color: #fff;
      background: #3b82f6;
      border: none;
      border-radius: .5rem;
      cursor: pointer;
      text-decoration: none;
    }
    .btn:hover { background: #2563eb; }
    .back-link { display: block; margin-top: 1.5rem; color: #64748b; font-size: .875rem; text-decoration: none; }
    .back-link:hover { color: #3b82f6; }
  </style>
</head>
<body>
  <div class="admin-card">
    <h1>Résultats du questionnaire</h1>
    <p class="subtitle">Administration - Chantraine À-Venir</p>
    <div class="stat">%d</div>
    <p class="stat-label">réponse%s enregistrée%s</p>
    <a href="/resultats?format=csv" class="btn" download="questionnaire-resultats.csv">Télécharger le CSV</a>
    <a href="/" class="back-link">Retour à l'accueil</a>
  </div>
</body>
</html>`, count, plural, plural)
}
