package server

// indexHTML is the paste form. It is embedded so the binary stays a single
// file; the page talks to the JSON endpoints below it.
const indexHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Bank Transfer List Generator</title>
<style>
  body { font-family: sans-serif; max-width: 960px; margin: 2em auto; padding: 0 1em; color: #222; }
  textarea { width: 100%; height: 10em; font-family: monospace; font-size: 0.85em; }
  label { display: block; margin: 1em 0 0.25em; font-weight: bold; }
  button { margin: 1em 0.5em 0 0; padding: 0.5em 1.5em; }
  table { border-collapse: collapse; margin-top: 1em; width: 100%; font-size: 0.85em; }
  th, td { border: 1px solid #ccc; padding: 0.3em 0.6em; text-align: left; }
  #summary { margin-top: 1em; font-weight: bold; }
  #skipped { margin-top: 0.5em; color: #a33; font-size: 0.85em; }
  #error { margin-top: 1em; color: #a00; }
</style>
</head>
<body>
<h1>Bank Transfer List Generator</h1>
<p>Paste the invoice table (with or without its header row) and, optionally,
the business-trip table. Preview the batch, then download the transfer file.</p>

<label for="invoices">Invoices</label>
<textarea id="invoices" placeholder="Paste the invoice table here"></textarea>

<label for="trips">Business trips (optional)</label>
<textarea id="trips" placeholder="Paste the business-trip table here"></textarea>

<div>
  <button id="preview">Preview</button>
  <button id="download">Download</button>
</div>

<div id="error"></div>
<div id="summary"></div>
<div id="result"></div>
<div id="skipped"></div>

<script>
function payload() {
  return JSON.stringify({
    invoices: document.getElementById('invoices').value,
    trips: document.getElementById('trips').value
  });
}

function showError(message) {
  document.getElementById('error').textContent = message;
  document.getElementById('summary').textContent = '';
  document.getElementById('result').innerHTML = '';
  document.getElementById('skipped').textContent = '';
}

document.getElementById('preview').addEventListener('click', async () => {
  const resp = await fetch('/api/preview', {
    method: 'POST',
    headers: { 'Content-Type': 'application/json' },
    body: payload()
  });
  const body = await resp.json();
  if (!body.success) {
    showError(body.error.message);
    return;
  }
  const data = body.data;
  document.getElementById('error').textContent = '';
  document.getElementById('summary').textContent =
    data.transferCount + ' transfer(s), total ' + data.totalAmount + ' → ' + data.filename;

  const rows = data.transfers.map(t =>
    '<tr><td>' + [t.bankAccount, t.payeeName, t.title, t.amount]
      .map(v => (v || '').replace(/&/g, '&amp;').replace(/</g, '&lt;')).join('</td><td>') + '</td></tr>');
  document.getElementById('result').innerHTML =
    '<table><tr><th>Bank account</th><th>Payee</th><th>Title</th><th>Amount</th></tr>' +
    rows.join('') + '</table>';

  const skipped = data.skipped || [];
  document.getElementById('skipped').textContent = skipped.length
    ? 'Skipped: ' + skipped.map(s => s.source + ' row ' + s.line + ' (' + s.reason + ')').join('; ')
    : '';
});

document.getElementById('download').addEventListener('click', async () => {
  const resp = await fetch('/api/generate', {
    method: 'POST',
    headers: { 'Content-Type': 'application/json' },
    body: payload()
  });
  if (!resp.ok) {
    const body = await resp.json();
    showError(body.error.message);
    return;
  }
  const disposition = resp.headers.get('Content-Disposition') || '';
  const match = disposition.match(/filename="?([^"]+)"?/);
  const blob = await resp.blob();
  const link = document.createElement('a');
  link.href = URL.createObjectURL(blob);
  link.download = match ? match[1] : 'transfers.ebgz';
  link.click();
  URL.revokeObjectURL(link.href);
});
</script>
</body>
</html>
`
