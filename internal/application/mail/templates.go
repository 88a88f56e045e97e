package mail

import "html/template"

const layoutHTML = `{{define "layout"}}<div style="font-family: sans-serif; max-width: 600px; margin: 0 auto; border: 1px solid #e5e7eb; border-radius: 12px; overflow: hidden;">
  <div style="background-color: #1e40af; padding: 24px; text-align: center;">
    <h1 style="color: white; margin: 0; font-size: 22px;">{{.Heading}}</h1>
  </div>
  <div style="padding: 32px;">{{template "body" .}}</div>
  <div style="background-color: #f9fafb; padding: 16px; text-align: center; border-top: 1px solid #e5e7eb;">
    <p style="color: #9ca3af; font-size: 11px; margin: 0;">&copy; {{.Year}} {{.AppName}}</p>
  </div>
</div>{{end}}`

const passwordResetHTML = `{{define "body"}}
<h2 style="color: #111827; margin-top: 0;">Gentile {{.UserName}},</h2>
<p style="color: #4b5563; line-height: 1.6;">È stata inoltrata una richiesta di recupero credenziali per il tuo account su {{.AppName}}.</p>
{{if .Link}}<p style="text-align: center; margin: 32px 0;"><a href="{{.Link}}" style="background-color: #1e40af; color: white; padding: 14px 28px; border-radius: 8px; text-decoration: none; font-weight: bold;">Reimposta Password</a></p>{{end}}
<p style="color: #9ca3af; font-size: 12px;">Se non hai richiesto tu questa operazione, contatta immediatamente l'amministratore della tua sede.</p>
{{end}}`

const deadlineAlertHTML = `{{define "body"}}
<h2 style="color: #111827; margin-top: 0;">Attenzione {{.UserName}},</h2>
<p style="color: #4b5563;">Il sistema ha rilevato una pratica in scadenza critica che richiede la tua attenzione.</p>
<table style="width: 100%; background-color: #fef2f2; border: 1px solid #fee2e2; border-radius: 8px; padding: 20px;">
  <tr><td style="color: #991b1b; font-size: 12px; font-weight: bold;">PRATICA</td><td style="text-align: right; font-weight: bold;">{{.CaseTitle}}</td></tr>
  <tr><td style="color: #991b1b; font-size: 12px; font-weight: bold;">TERMINE</td><td style="text-align: right; color: #dc2626; font-weight: bold;">{{.Deadline}}</td></tr>
  {{if .Priority}}<tr><td style="color: #991b1b; font-size: 12px; font-weight: bold;">PRIORITÀ</td><td style="text-align: right;">{{.Priority}}</td></tr>{{end}}
</table>
{{end}}`

const supportRequestHTML = `{{define "body"}}
<p><strong>Da:</strong> {{.Name}} ({{.Email}})</p>
{{if .Sede}}<p><strong>Sede:</strong> {{.Sede}}</p>{{end}}
<p><strong>Oggetto:</strong> {{.Subject}}</p>
<hr style="border: 0; border-top: 1px solid #e5e7eb; margin: 20px 0;">
<p style="white-space: pre-wrap;">{{.Message}}</p>
{{end}}`

var (
	passwordResetTmpl  = template.Must(template.Must(template.New("layout").Parse(layoutHTML)).Parse(passwordResetHTML))
	deadlineAlertTmpl  = template.Must(template.Must(template.New("layout").Parse(layoutHTML)).Parse(deadlineAlertHTML))
	supportRequestTmpl = template.Must(template.Must(template.New("layout").Parse(layoutHTML)).Parse(supportRequestHTML))
)
