package mail

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"tutorconnect/internal/domain/service"
	"tutorconnect/pkg/logger"
)

const resendBaseURL = "https://api.resend.com"

// ResendClient sends transactional email through the Resend HTTP API.
type ResendClient struct {
	apiKey      string
	from        string
	replyTo     string
	frontendURL string
	httpClient  *http.Client
}

func NewResendClient(apiKey, from, replyTo, frontendURL string) *ResendClient {
	return &ResendClient{
		apiKey:      apiKey,
		from:        from,
		replyTo:     replyTo,
		frontendURL: frontendURL,
		httpClient:  &http.Client{Timeout: 10 * time.Second},
	}
}

type resendEmailRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	ReplyTo string   `json:"reply_to,omitempty"`
	Subject string   `json:"subject"`
	Text    string   `json:"text"`
	HTML    string   `json:"html"`
}

type resendEmailResponse struct {
	ID      string `json:"id,omitempty"`
	Message string `json:"message,omitempty"`
}

func (r *ResendClient) SendBookingNotification(ctx context.Context, n service.BookingNotification) (*service.NotifyResult, error) {
	if r.apiKey == "" {
		logger.Warn("RESEND_API_KEY is not set, skipping booking notification")
		return &service.NotifyResult{Skipped: true, Reason: "missing API key"}, nil
	}

	subject := fmt.Sprintf("New Booking Request: %s with %s", n.Subject, n.ParentName)
	text := fmt.Sprintf("New booking request from %s for %s on %s at %s. Rate: $%.0f/hr",
		n.ParentName, n.Subject, n.ScheduledDate, n.ScheduledTime, n.Price)

	payload := resendEmailRequest{
		From:    r.from,
		To:      []string{n.TutorEmail},
		ReplyTo: r.replyTo,
		Subject: subject,
		Text:    text,
		HTML:    r.renderBookingHTML(n),
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return &service.NotifyResult{Reason: "marshal failed"}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, resendBaseURL+"/emails", bytes.NewBuffer(body))
	if err != nil {
		return &service.NotifyResult{Reason: "request build failed"}, err
	}
	req.Header.Set("Authorization", "Bearer "+r.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return &service.NotifyResult{Reason: "request failed"}, err
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var apiErr resendEmailResponse
		json.Unmarshal(respBody, &apiErr)
		reason := apiErr.Message
		if reason == "" {
			reason = fmt.Sprintf("provider returned status %d", resp.StatusCode)
		}
		return &service.NotifyResult{Reason: reason}, fmt.Errorf("resend: %s", reason)
	}

	var result resendEmailResponse
	json.Unmarshal(respBody, &result)
	logger.Info("Booking notification email sent, id=%s", result.ID)

	return &service.NotifyResult{Sent: true}, nil
}

func (r *ResendClient) renderBookingHTML(n service.BookingNotification) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <meta name="viewport" content="width=device-width, initial-scale=1.0"/>
    <meta http-equiv="Content-Type" content="text/html; charset=UTF-8" />
    <title>New Booking Request</title>
</head>
<body style="margin:0;padding:0;font-family:'Segoe UI',Tahoma,Geneva,Verdana,sans-serif;background-color:#f4f4f5;">
    <div style="max-width:600px;margin:40px auto;background-color:#ffffff;border-radius:8px;overflow:hidden;">
        <div style="background:linear-gradient(135deg,#4F46E5 0%%,#7C3AED 100%%);padding:30px;text-align:center;">
            <h1 style="color:white;margin:0;font-size:24px;">TutorConnect</h1>
        </div>
        <div style="padding:40px 30px;color:#374151;line-height:1.6;">
            <div style="font-size:18px;font-weight:600;margin-bottom:20px;color:#111827;">Hi %s,</div>
            <p>Great news! You have received a new booking request from <strong>%s</strong>.</p>
            <div style="background-color:#F9FAFB;border:1px solid #E5E7EB;border-radius:8px;padding:20px;margin:20px 0;">
                <p style="margin:4px 0;"><span style="color:#6B7280;">Subject:</span> <strong>%s</strong></p>
                <p style="margin:4px 0;"><span style="color:#6B7280;">Date:</span> <strong>%s</strong></p>
                <p style="margin:4px 0;"><span style="color:#6B7280;">Time:</span> <strong>%s</strong></p>
                <p style="margin:4px 0;"><span style="color:#6B7280;">Rate:</span> <strong>$%.0f/hr</strong></p>
            </div>
            <p>Please review this request in your dashboard to accept or decline.</p>
            <div style="text-align:center;margin-top:30px;">
                <a href="%s/dashboard" style="display:inline-block;background-color:#4F46E5;color:white;padding:12px 30px;text-decoration:none;border-radius:6px;font-weight:600;">View Dashboard</a>
            </div>
        </div>
        <div style="background-color:#F9FAFB;padding:20px;text-align:center;color:#6B7280;font-size:12px;">
            <p>&copy; %d TutorConnect. All rights reserved.</p>
            <p>You received this email because you are a registered tutor on TutorConnect.</p>
        </div>
    </div>
</body>
</html>`, n.TutorName, n.ParentName, n.Subject, n.ScheduledDate, n.ScheduledTime, n.Price, r.frontendURL, time.Now().Year())
}
