package builder

import "text/template"

// Page documents are assembled from these partials. Values land inside
// <style> and <script> blocks and are written unescaped.
var pageTemplates = template.Must(template.New("page").Parse(headerTemplate + bannerTemplate + placeholderTemplate + footerTemplate))

const headerTemplate = `{{ define "header" -}}
<html>
<head>
	<meta name="viewport" content="width=device-width, initial-scale=1">
	<link rel="stylesheet" href="{{ .Options.Assets.Stylesheet }}">
	<style>
		.menu #{{ .MenuID }}, .menu #{{ .CategoryID }}-category { color: goldenrod; }
{{- if not .Page.HasContent }}
		.under-construction {
			margin: 30px auto;
			width: 100%;
			display: flex;
			flex-direction: column;
			align-items: center;
		}
{{- end }}
	</style>
</head>
<body>
<div id="navbar" style="position: -webkit-sticky;position: sticky;top: -2px; width: 100%; z-index: 100; margin-bottom: 100px;"></div>
{{ template "banner" . }}
{{- if .Options.IncludePageWrapperDiv }}
<div class="page-{{ .MenuID }}">
{{- end }}
{{ end }}`

const bannerTemplate = `{{ define "banner" }}
<style>
	.header::before {
		background: black url("{{ .Banner.Desktop }}") no-repeat left;
		background-size: 100%;
	}
	.header h1 {
		background: none;
	}
{{- if .Options.IncludeSmallScreenBanner }}

	@media screen and (max-width: 720px) {
		.header::before {
			background: black url("{{ .Banner.Small }}") no-repeat left;
			background-size: 100% 100%;
		}
	}
{{- end }}
</style>

<div class="header">
	<div>
		<div id="icon"></div>
		<script> $('#icon').load("{{ .Page.IconURL }}?action=raw&ctype=text/html"); </script>
		<h1>{{ .DisplayTitle }}</h1>
	</div>
</div>
{{- end }}`

const placeholderTemplate = `{{ define "placeholder" }}
<div class="under-construction">
	<h1>{{ .Page.Name }}</h1>
	<p>{{ .NoContentMessage }}</p>
</div>
{{ end }}`

const footerTemplate = `{{ define "footer" }}
<div id="footer"></div>
<script src="{{ .Options.Assets.Script }}"></script>
{{- if .Options.IncludePageWrapperDiv }}

</div>
{{- end }}
</body>
</html>
{{ end }}`
