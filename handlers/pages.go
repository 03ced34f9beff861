package handlers

import (
	"html/template"
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"github.com/goodcents/goodcents-api/utils"
)

// PagesHandler serves the two demo front-ends and the generated landing page.
// This is plain file plumbing; all decisions live in the services.
type PagesHandler struct {
	WebDir    string
	AIEnabled bool
}

func NewPagesHandler(webDir string, aiEnabled bool) *PagesHandler {
	return &PagesHandler{WebDir: webDir, AIEnabled: aiEnabled}
}

func (h *PagesHandler) BankApp(c *gin.Context) {
	c.File(filepath.Join(h.WebDir, "bank_mobile_app.html"))
}

func (h *PagesHandler) Checkout(c *gin.Context) {
	c.File(filepath.Join(h.WebDir, "checkout_demo.html"))
}

var demoTemplate = template.Must(template.New("demo").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>GoodCents Banking Demo</title>
<style>
  body { font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif;
         background: linear-gradient(135deg, #667eea 0%, #764ba2 100%);
         min-height: 100vh; color: white; padding: 2rem; margin: 0; }
  .container { max-width: 1200px; margin: 0 auto; }
  .header { text-align: center; margin-bottom: 3rem; background: rgba(255,255,255,0.1);
            padding: 2rem; border-radius: 20px; }
  .status { display: inline-block; padding: 0.5rem 1rem; border-radius: 20px; font-size: 0.9rem;
            background: {{if .AIEnabled}}rgba(34,197,94,0.2){{else}}rgba(239,68,68,0.2){{end}};
            border: 1px solid {{if .AIEnabled}}#22c55e{{else}}#ef4444{{end}}; }
  .demo-grid { display: grid; grid-template-columns: 1fr 1fr; gap: 2rem; }
  .demo-card { background: rgba(255,255,255,0.1); padding: 2rem; border-radius: 20px; text-align: center; }
  .demo-button { background: #4f46e5; color: white; padding: 1rem 2rem; border-radius: 10px;
                 text-decoration: none; display: inline-block; }
  @media (max-width: 768px) { .demo-grid { grid-template-columns: 1fr; } }
</style>
</head>
<body>
<div class="container">
  <div class="header">
    <h1>GoodCents Banking Demo</h1>
    <p>AI-powered charity roundups for student banking</p>
    <div class="status">{{if .AIEnabled}}Claude AI Enabled{{else}}⚠️ Claude AI Disabled (add API key){{end}}</div>
  </div>
  <div class="demo-grid">
    <div class="demo-card">
      <h2>📱 Bank Mobile App</h2>
      <p>Banking interface with AI charity selection</p>
      <a href="/bank" target="_blank" class="demo-button">Open Mobile Bank</a>
    </div>
    <div class="demo-card">
      <h2>🛒 E-Commerce Checkout</h2>
      <p>Test payments with real-time updates</p>
      <a href="/checkout" target="_blank" class="demo-button">Open Checkout</a>
    </div>
  </div>
</div>
</body>
</html>
`))

func (h *PagesHandler) Demo(c *gin.Context) {
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(http.StatusOK)
	if err := demoTemplate.Execute(c.Writer, gin.H{"AIEnabled": h.AIEnabled}); err != nil {
		utils.Warn("Failed to render demo page: %v", err)
	}
}
