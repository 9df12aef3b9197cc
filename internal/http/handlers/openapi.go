package handlers

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"html/template"
	"net/http"
)

const openAPIPath = "/v1/openapi.json"

//go:embed openapi.json
var openAPISpec []byte

var docsPage = template.Must(template.New("docs").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}} {{.Version}}</title>
<meta name="description" content="{{.Description}}">
<style>body{margin:0}redoc{display:block;height:100vh}</style>
</head>
<body>
<redoc spec-url="{{.SpecURL}}"></redoc>
<script src="https://cdn.jsdelivr.net/npm/redoc@2.2.0/bundles/redoc.standalone.js"></script>
</body>
</html>`))

type docsInfo struct {
	Title       string `json:"title"`
	Version     string `json:"version"`
	Description string `json:"description"`
	SpecURL     string `json:"-"`
}

// renderDocs builds the ReDoc page from the info block of the embedded document.
func renderDocs(spec []byte) ([]byte, error) {
	var doc struct {
		Info docsInfo `json:"info"`
	}
	if err := json.Unmarshal(spec, &doc); err != nil {
		return nil, err
	}
	doc.Info.SpecURL = openAPIPath
	var buf bytes.Buffer
	if err := docsPage.Execute(&buf, doc.Info); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (a *App) OpenAPIJSON(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(openAPISpec)
}

func (a *App) OpenAPIDocs(w http.ResponseWriter, r *http.Request) {
	page, err := renderDocs(openAPISpec)
	if err != nil {
		a.fail(w, r, err, "render docs")
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(page)
}
