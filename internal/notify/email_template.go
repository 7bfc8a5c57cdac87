package notify

const digestHTMLTemplate = `<!DOCTYPE html>
<html>
<head>
  <meta charset="UTF-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1" />
  <title>TickerPulse Digest</title>
  <style>
    body {
      margin: 0;
      padding: 24px;
      background-color: #f3f4f6;
      font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, sans-serif;
      color: #111827;
      line-height: 1.5;
    }

    .container {
      max-width: 640px;
      margin: 0 auto;
      background: #ffffff;
      border-radius: 8px;
      border: 1px solid #e5e7eb;
      overflow: hidden;
    }

    .header {
      padding: 20px 24px;
      background: linear-gradient(135deg, #1e3a5f 0%, #2d3748 100%);
      color: #ffffff;
    }

    .header-title {
      font-size: 24px;
      font-weight: 700;
      letter-spacing: 0.05em;
      margin-bottom: 4px;
    }

    .header-date {
      font-size: 15px;
      opacity: 0.9;
    }

    .section {
      padding: 16px 24px;
      border-top: 1px solid #f3f4f6;
    }

    .section-title {
      font-size: 11px;
      font-weight: 700;
      color: #6b7280;
      text-transform: uppercase;
      letter-spacing: 0.1em;
      margin-bottom: 12px;
    }

    .ticker-list {
      display: flex;
      flex-wrap: wrap;
      gap: 6px;
      margin: 0 0 12px 0;
      padding: 0;
      list-style: none;
    }

    .ticker-tag {
      display: inline-block;
      padding: 3px 10px;
      font-size: 12px;
      font-weight: 500;
      background: #e0f2fe;
      color: #0369a1;
      border-radius: 4px;
    }

    .picks-table {
      width: 100%;
      border-collapse: collapse;
      font-size: 14px;
    }

    .picks-table th {
      text-align: left;
      padding: 6px 8px;
      color: #6b7280;
      font-weight: 600;
      font-size: 12px;
      text-transform: uppercase;
      border-bottom: 1px solid #e5e7eb;
    }

    .picks-table td {
      padding: 6px 8px;
      border-bottom: 1px solid #f3f4f6;
    }

    .pick-symbol {
      font-weight: 700;
    }

    .empty-note {
      font-size: 13px;
      color: #6b7280;
      font-style: italic;
    }

    .footer {
      padding: 16px 24px;
      font-size: 12px;
      color: #9ca3af;
      text-align: center;
      background: #f9fafb;
      border-top: 1px solid #f3f4f6;
    }

    a {
      color: #0b3d91;
      text-decoration: none;
    }
  </style>
</head>
<body>
  <div class="container">
    <div class="header">
      <div class="header-title">TickerPulse</div>
      <div class="header-date">{{.GeneratedAt.Format "02 Jan 2006"}}</div>
    </div>

    {{range .Results}}
    <div class="section">
      <div class="section-title">
        <a href="https://youtu.be/{{.VideoID}}" target="_blank" rel="noopener">youtu.be/{{.VideoID}}</a>
      </div>

      {{if not .HasTickers}}
      <div class="empty-note">No tickers mentioned.</div>
      {{else}}
      <ul class="ticker-list">
        {{range .Tickers}}
        <li class="ticker-tag">{{.}}</li>
        {{end}}
      </ul>

      {{if not .HasRatings}}
      <div class="empty-note">No analyst ratings resolved.</div>
      {{else}}
      <table class="picks-table">
        <tr>
          <th>Symbol</th>
          <th>Rating</th>
          <th>Price</th>
          <th>Target</th>
          <th>Upside</th>
          <th>Analysts</th>
        </tr>
        {{range .TopPicks}}
        <tr>
          <td class="pick-symbol">{{.Symbol}}</td>
          <td>{{.Label}}</td>
          <td>{{fmtPrice .Price}}</td>
          <td>{{fmtPrice .TargetPrice}}</td>
          <td>{{fmtUpside .Upside}}</td>
          <td>{{.Analysts}}</td>
        </tr>
        {{end}}
      </table>
      {{end}}
      {{end}}
    </div>
    {{end}}

    <div class="footer">
      Generated by TickerPulse
    </div>
  </div>
</body>
</html>`
