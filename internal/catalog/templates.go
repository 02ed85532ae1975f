package catalog

// pageTemplate is the html/template for the catalog document. Layout values
// reach the stylesheet as template.CSS; everything else is escaped by context.
const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.Title}}</title>
  <style>
    body {
      font-family: Arial, sans-serif;
      margin: 0;
      padding: 10px;
      background: {{.Palette.Background}};
      color: {{.Palette.Text}};
    }
    .tabs {
      position: fixed;
      {{.BarPosition}};
      left: 0;
      width: 100%;
      box-sizing: border-box;
      padding: 20px 10px;
      background-color: {{.Palette.Bar}};
      z-index: 10;
    }
    .tab-button, .action-button {
      cursor: pointer;
      color: #fff;
      font-size: 20px;
      padding: 10px;
      margin-right: 10px;
      border-radius: 4px;
      border: none;
    }
    .tab-button {
      background: {{.Palette.Button}};
    }
    .tab-button.active {
      background: {{.Palette.ButtonActive}};
    }
    .action-button {
      background: {{.Palette.Action}};
    }
    .spacer {
      margin-left: 20px;
    }
    .content {
      {{.ContentMargin}};
    }
    .notes {
      border-bottom: 1px solid {{.Palette.Border}};
      margin-bottom: 10px;
    }
    .notes pre {
      padding: 8px;
      border-radius: 4px;
      overflow-x: auto;
    }
    .tab {
      display: none;
    }
    .tab.active {
      display: block;
    }
    .image-container {
      display: flex;
      flex-wrap: wrap;
      gap: 10px;
      justify-content: flex-start;
    }
    .image-block {
      flex: 1 0 {{.BlockWidth}};
      max-width: {{.BlockWidth}};
      box-sizing: border-box;
      margin: 0;
      text-align: center;
    }
    .image-block img {
      width: 98%;
      height: auto;
      cursor: pointer;
      border: 2px solid {{.Palette.Border}};
      border-radius: 4px;
      padding: 3px;
      transition: 0.3s;
    }
    .image-block img:hover {
      border-color: {{.Palette.BorderHover}};
    }
    .image-block figcaption {
      margin: 6px 0 12px;
      overflow-wrap: anywhere;
    }
  </style>
</head>
<body>
  <nav class="tabs">
{{- range .Tabs}}
    <button class="tab-button{{if .Active}} active{{end}}" data-tab="{{.Index}}" onclick="showTab(Number(this.dataset.tab))">{{.Label}}</button>
{{- end}}
{{- if .Actions}}
    <span class="spacer"></span>
{{- range .Actions}}
    <button class="action-button" data-copy="{{.Text}}" onclick="copyToClipboard(this.dataset.copy)">{{.Label}}</button>
{{- end}}
{{- end}}
  </nav>
  <main class="content">
{{- if .Notes}}
    <section class="notes">
{{.Notes}}
    </section>
{{- end}}
{{- range .Tabs}}
    <section id="tab{{.Index}}" class="tab{{if .Active}} active{{end}}">
      <div class="image-container">
{{- range .Images}}
        <figure class="image-block">
          <img src="{{.Path}}" alt="{{.Name}}" data-copy="{{.Name}}" onclick="copyToClipboard(this.dataset.copy)">
          <figcaption>{{.Name}}</figcaption>
        </figure>
{{- end}}
      </div>
    </section>
{{- end}}
  </main>
  <script>
    function copyToClipboard(text) {
      if (!navigator.clipboard) {
        return;
      }
      navigator.clipboard.writeText(text).catch(function () {});
    }

    function showTab(index) {
      var tabs = document.querySelectorAll('.tab');
      var buttons = document.querySelectorAll('.tab-button');
      if (index < 0 || index >= tabs.length) {
        return;
      }

      tabs.forEach(function (tab) { tab.classList.remove('active'); });
      buttons.forEach(function (button) { button.classList.remove('active'); });

      tabs[index].classList.add('active');
      buttons[index].classList.add('active');
    }
  </script>
</body>
</html>
`
