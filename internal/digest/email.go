package digest

import (
	"fmt"
	"strings"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/genielab/genie/internal/genie"
)

// Sender delivers one rendered digest. Tests substitute a recording fake.
type Sender interface {
	Send(to, subject, body string) error
}

type SendGridSender struct {
	apiKey      string
	fromName    string
	fromAddress string
}

func NewSendGridSender(apiKey, fromName, fromAddress string) *SendGridSender {
	return &SendGridSender{
		apiKey:      apiKey,
		fromName:    fromName,
		fromAddress: fromAddress,
	}
}

func (s *SendGridSender) Send(to, subject, body string) error {
	from := mail.NewEmail(s.fromName, s.fromAddress)
	toEmail := mail.NewEmail("", to)
	email := mail.NewSingleEmail(from, subject, toEmail, body, body)

	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.Send(email)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid error: status %d", response.StatusCode)
	}

	return nil
}

// renderDigest formats a recommendation as the plain-text email body.
func renderDigest(rec genie.Recommendation) string {
	var b strings.Builder

	b.WriteString("Your Genie digest\n\n")

	b.WriteString("Top tasks\n")
	for _, r := range rec.HighPriorityRecommendations {
		if r.Title != "" {
			fmt.Fprintf(&b, "- %s", r.Title)
			if r.Message != "" {
				fmt.Fprintf(&b, ": %s", r.Message)
			}
			if r.TimeEstimate != "" {
				fmt.Fprintf(&b, " (est. %s)", r.TimeEstimate)
			}
			b.WriteString("\n")
		} else if r.Message != "" {
			fmt.Fprintf(&b, "- %s\n", r.Message)
		}
	}

	fmt.Fprintf(&b, "\n%s\n", rec.TimeManagement.Message)
	for _, block := range rec.TimeManagement.TimeBlocks {
		fmt.Fprintf(&b, "- %s-%s %s: %s\n",
			block.StartTime, block.EndTime, block.ActivityType, block.Recommendation)
	}

	b.WriteString("\nTips\n")
	for _, tip := range rec.ProductivityTips {
		fmt.Fprintf(&b, "- %s\n", tip)
	}

	fmt.Fprintf(&b, "\n%s\n", rec.SuggestedPomodoro.Explanation)

	return b.String()
}
