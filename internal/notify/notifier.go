package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"html/template"

	"github.com/flyambition/flyambition-api/internal/models"
	"github.com/flyambition/flyambition-api/pkg/metrics"
)

type summaryField struct {
	Label string
	Key   string
}

// summaries lists, per form, the fields shown in the HTML notification.
var summaries = map[models.SubmissionKind][]summaryField{
	models.KindEmployment: {
		{"Name", "name"},
		{"Email", "email"},
		{"Mobile", "mobile"},
		{"Desired Job", "desiredJob"},
		{"Destination", "destination"},
		{"Location", "location"},
		{"Skills", "skills"},
		{"Message", "message"},
	},
	models.KindEducation: {
		{"Name", "name"},
		{"Email", "email"},
		{"Phone", "phone"},
		{"Subject", "subject"},
		{"Message", "message"},
	},
}

var summaryTmpl = template.Must(template.New("summary").Parse(
	`<h3>New {{.Title}} Form Submission</h3>
{{range .Rows}}<p><b>{{.Label}}:</b> {{.Value}}</p>
{{end}}`))

type summaryRow struct {
	Label string
	Value string
}

// Notifier turns stored submissions into high-priority emails for the
// configured recipient.
type Notifier struct {
	sender    Sender
	recipient string
}

func NewNotifier(sender Sender, recipient string) *Notifier {
	return &Notifier{sender: sender, recipient: recipient}
}

// NotifySubmission sends the notification for one submission synchronously.
func (n *Notifier) NotifySubmission(ctx context.Context, kind models.SubmissionKind, sub models.Submission) error {
	msg, err := BuildSubmissionMessage(kind, sub)
	if err != nil {
		metrics.Notifications.WithLabelValues(string(kind), "error").Inc()
		return err
	}
	msg.To = n.recipient
	if err := n.sender.Send(ctx, msg); err != nil {
		metrics.Notifications.WithLabelValues(string(kind), "error").Inc()
		return err
	}
	metrics.Notifications.WithLabelValues(string(kind), "sent").Inc()
	return nil
}

// BuildSubmissionMessage renders subject and bodies; the recipient is left empty.
// The text part is the full submission as indented JSON, the HTML part a
// summary of the well-known fields with user input escaped.
func BuildSubmissionMessage(kind models.SubmissionKind, sub models.Submission) (Message, error) {
	fields, ok := summaries[kind]
	if !ok {
		return Message{}, fmt.Errorf("notify: unknown submission kind %q", kind)
	}

	text, err := json.MarshalIndent(sub, "", "  ")
	if err != nil {
		return Message{}, fmt.Errorf("notify: encode submission: %w", err)
	}

	rows := make([]summaryRow, 0, len(fields))
	for _, f := range fields {
		rows = append(rows, summaryRow{Label: f.Label, Value: sub.String(f.Key)})
	}
	var html bytes.Buffer
	if err := summaryTmpl.Execute(&html, struct {
		Title string
		Rows  []summaryRow
	}{kind.Title(), rows}); err != nil {
		return Message{}, fmt.Errorf("notify: render summary: %w", err)
	}

	return Message{
		Subject:      fmt.Sprintf("📩 New %s form Submission", kind.Title()),
		Text:         string(text),
		HTML:         html.String(),
		HighPriority: true,
	}, nil
}
