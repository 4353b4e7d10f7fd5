package web

const tmplPage = `<!DOCTYPE html>
<html lang="ja">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width,initial-scale=1">
<title>{{.Title}}</title>
<style>
*{box-sizing:border-box;margin:0;padding:0}
body{font-family:'Hiragino Sans','Noto Sans JP',sans-serif;background:linear-gradient(170deg,#0e7490 0%,#155e75 55%,#164e63 100%);color:#0c4a6e;font-size:14px;line-height:1.5;min-height:100vh}
a{text-decoration:none;color:inherit}
.wrap{max-width:480px;margin:0 auto;padding:32px 20px 96px}
header{margin-bottom:28px;display:flex;align-items:flex-start;justify-content:space-between;gap:16px}
.kicker{font-size:11px;letter-spacing:.4em;text-transform:uppercase;color:#e0f2fe}
h1{font-size:26px;color:#fff;margin-top:2px}
.range{margin-top:8px;font-size:13px;color:#e0f2fe}
.share{border:0;border-radius:999px;background:#fef3c7;color:#0c4a6e;padding:8px 16px;font-size:12px;font-weight:500;cursor:pointer;box-shadow:0 6px 18px rgba(8,47,73,.25)}
.chips{display:flex;gap:8px;overflow-x:auto;padding-bottom:8px;margin-bottom:20px}
.chips::-webkit-scrollbar{display:none}
.chip{min-width:72px;text-align:center;border-radius:999px;padding:8px 16px;font-size:13px;background:rgba(255,255,255,.6);color:#0c4a6e;white-space:nowrap}
.chip.active{background:#f97316;color:#fff;box-shadow:0 6px 18px rgba(8,47,73,.25)}
.panel{border-radius:18px;background:rgba(255,255,255,.65);padding:16px;margin-bottom:22px;box-shadow:0 6px 18px rgba(8,47,73,.15)}
.cats{display:flex;flex-wrap:wrap;gap:8px;margin-bottom:12px}
.cat{border-radius:999px;padding:4px 12px;font-size:12px;font-weight:500;background:rgba(255,255,255,.8);color:#0c4a6e}
.cat.active{background:#f97316;color:#fff}
.controls{display:flex;align-items:flex-end;gap:12px}
.controls label{font-size:11px;color:#0c4a6e}
.controls select{width:100%;margin-top:4px;border-radius:999px;border:1px solid rgba(255,255,255,.6);background:rgba(255,255,255,.9);padding:8px 12px;font-size:13px;color:#0c4a6e}
.controls .field{flex:1}
.maponly{display:flex;align-items:center;gap:6px;font-size:12px;white-space:nowrap;padding-bottom:10px}
.controls button{border:0;border-radius:999px;background:#0e7490;color:#fff;padding:8px 14px;font-size:12px;cursor:pointer}
.section-hdr{display:flex;align-items:center;gap:12px;margin-bottom:12px;color:#e0f2fe}
.section-hdr span{font-size:11px;letter-spacing:.3em;text-transform:uppercase}
.section-hdr .rule{height:1px;flex:1;background:rgba(255,255,255,.3)}
.timeline{position:relative;display:flex;flex-direction:column;gap:16px;margin-bottom:40px}
.timeline:before{content:"";position:absolute;left:12px;top:8px;bottom:0;width:1px;background:rgba(255,255,255,.4)}
.card{position:relative;border-radius:18px;background:#fefce8;padding:20px 20px 16px 32px;box-shadow:0 6px 18px rgba(8,47,73,.2)}
.card:before{content:"";position:absolute;left:7px;top:24px;width:12px;height:12px;border-radius:999px;background:#f43f5e}
.meta{display:flex;align-items:center;gap:8px;font-size:12px}
.meta .time{font-weight:600;font-variant-numeric:tabular-nums}
.badge{border-radius:999px;background:rgba(14,116,144,.15);padding:2px 8px;font-size:10px;font-weight:500}
.card h3{margin-top:8px;font-size:15px;font-weight:600}
.card h3 .prefix{font-size:11px;letter-spacing:.2em;text-transform:uppercase;color:#f97316;margin-right:8px}
.notes{margin-top:8px;font-size:13px;color:rgba(12,74,110,.8)}
.card-foot{margin-top:14px;display:flex;align-items:center;justify-content:space-between;font-size:12px;color:rgba(12,74,110,.7)}
.maplink{border-radius:999px;background:#0e7490;color:#fff;padding:4px 12px;font-size:12px;font-weight:500}
.area-panel{border-radius:18px;background:rgba(255,255,255,.7);padding:20px;margin-bottom:44px;box-shadow:0 6px 18px rgba(8,47,73,.15)}
.area-panel h4{font-size:13px;font-weight:600;color:#f97316}
.area-group{margin-bottom:16px}
.area-group .links{margin-top:8px;display:flex;flex-direction:column;gap:8px}
.area-group .links a{border-radius:999px;background:#fefce8;padding:8px 12px;font-size:12px}
.empty{font-size:13px;color:rgba(12,74,110,.7)}
footer{text-align:center;font-size:11px;color:#e0f2fe}
</style>
</head>
<body>
<div class="wrap">
<header>
  <div>
    <p class="kicker">Travel Shiori</p>
    <h1>{{.Title}}</h1>
    <p class="range">{{.Range}}</p>
  </div>
  <button class="share" type="button" onclick="shareTrip()">Share</button>
</header>

<section class="chips">
{{range .DayChips}}  <a class="chip{{if .Active}} active{{end}}" href="{{.URL}}">{{.Label}}</a>
{{end}}</section>

<section class="panel">
  <div class="cats">
{{range .CatChips}}    <a class="cat{{if .Active}} active{{end}}" href="{{.URL}}">{{.Label}}</a>
{{end}}  </div>
  <form class="controls" method="get" action="/">
    <input type="hidden" name="day" value="{{.State.Day}}">
{{range .State.Categories}}    <input type="hidden" name="category" value="{{.}}">
{{end}}    <div class="field">
      <label for="area">Area</label>
      <select id="area" name="area">
        <option value="{{.AreaAll}}">All areas</option>
{{$sel := .State.Area}}{{range .Areas}}        <option value="{{.}}"{{if eq . $sel}} selected{{end}}>{{areaLabel .}}</option>
{{end}}      </select>
    </div>
    <label class="maponly"><input type="checkbox" name="map_only" value="1"{{if .State.MapOnly}} checked{{end}}> Map only</label>
    <button type="submit">Apply</button>
  </form>
</section>

<section>
  <div class="section-hdr"><span>Timeline</span><div class="rule"></div></div>
  <div class="timeline">
{{range .Cards}}    <article class="card">
      <div class="meta">
        <span class="time">{{.TimeLabel}}</span>
{{if .Event.Category}}        <span class="badge">{{.Event.Category}}</span>
{{end}}      </div>
      <h3>{{if .TitlePrefix}}<span class="prefix">{{.TitlePrefix}}</span>{{end}}{{.TitleMain}}</h3>
{{if .Event.Notes}}      <p class="notes">{{.Event.Notes}}</p>
{{end}}      <div class="card-foot">
        <span>{{areaLabel .Event.Area}}</span>
{{if .Event.MapURL}}        <a class="maplink" href="{{.Event.MapURL}}" target="_blank" rel="noreferrer">Map &#8599;</a>
{{end}}      </div>
    </article>
{{end}}  </div>
</section>

<section class="area-panel">
  <div class="section-hdr" style="color:#0c4a6e"><span>Map by Area</span><div class="rule" style="background:rgba(14,116,144,.2)"></div></div>
{{if not .AreaGroups}}  <p class="empty">この日の地図リンクはまだありません。</p>
{{else}}{{range .AreaGroups}}  <div class="area-group">
    <h4>{{areaLabel .Area}}</h4>
    <div class="links">
{{range .Events}}      <a href="{{.MapURL}}" target="_blank" rel="noreferrer">{{.Title}}</a>
{{end}}    </div>
  </div>
{{end}}{{end}}</section>

<footer>Enjoy the trip. Keep hydrated.</footer>
</div>

<script>
async function shareTrip() {
  const data = {
    title: {{.Title}},
    text: {{.Title}} + " - Schedule",
    url: window.location.href
  };
  try {
    if (navigator.share) {
      await navigator.share(data);
    } else if (navigator.clipboard) {
      await navigator.clipboard.writeText(window.location.href);
      alert("リンクをコピーしました");
    }
  } catch (err) {
    // Dismissed share sheets and clipboard denials are not errors.
  }
}
new EventSource("/api/events").addEventListener("trip.reloaded", function () {
  window.location.reload();
});
</script>
</body>
</html>
`
