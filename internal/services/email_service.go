package services

import (
	"fmt"
	"strings"

	"pspk/internal/mailer"
	"pspk/internal/models"
)

// EmailService renders and dispatches the party's notification emails.
// Delivery is best-effort throughout: callers log failures and carry on.
type EmailService interface {
	SendOTPEmail(email, code, action string) error
	SendWelcomeEmail(email, firstName string) error
	SendApprovalEmail(email, fullName, membershipNumber string) error
	SendRejectionEmail(email, fullName, reason string) error
	SendResignationEmail(email, fullName string) error
	SendDataRequestConfirmation(email, requestType string) error
	NotifyAdminDataRequest(dr *models.DataRequest) error
	SendContactRelay(c *models.Contact) error
	SendVolunteerAck(email, name string) error
}

type emailService struct {
	transport mailer.Transport
	adminAddr string
}

func NewEmailService(transport mailer.Transport, adminAddr string) EmailService {
	return &emailService{transport: transport, adminAddr: adminAddr}
}

var otpActionLabels = map[string]string{
	models.ActionMembershipCheck: "check your membership status",
	models.ActionCorrection:      "request a correction of your data",
	models.ActionDeletion:        "request deletion of your data",
	models.ActionResignation:     "resign your membership",
}

func (s *emailService) SendOTPEmail(email, code, action string) error {
	label := otpActionLabels[action]
	if label == "" {
		label = "continue"
	}
	body := fmt.Sprintf(`
		<h3>Your PSP-K verification code</h3>
		<p>Use the following code to %s:</p>
		<p style="font-size:24px;letter-spacing:4px;"><strong>%s</strong></p>
		<p>The code expires in 10 minutes. If you did not request it, you can ignore this email.</p>
	`, label, code)
	return s.transport.Send(email, "Your PSP-K verification code", body)
}

func (s *emailService) SendWelcomeEmail(email, firstName string) error {
	body := fmt.Sprintf(`
		<h2>Karibu PSP-K, %s!</h2>
		<p>Thank you for registering with the People's Solidarity Party of Kenya.</p>
		<p>Your registration is pending verification. You will receive another email once it has been reviewed.</p>
		<p>In solidarity,<br>The PSP-K Secretariat</p>
	`, firstName)
	return s.transport.Send(email, "Welcome to PSP-K", body)
}

func (s *emailService) SendApprovalEmail(email, fullName, membershipNumber string) error {
	body := fmt.Sprintf(`
		<h2>Membership approved</h2>
		<p>Dear %s,</p>
		<p>Your PSP-K membership has been approved. Your membership number is:</p>
		<p style="font-size:20px;"><strong>%s</strong></p>
		<p>Keep it safe; you will need it for party activities and nominations.</p>
		<p>In solidarity,<br>The PSP-K Secretariat</p>
	`, fullName, membershipNumber)
	return s.transport.Send(email, "Your PSP-K membership has been approved", body)
}

func (s *emailService) SendRejectionEmail(email, fullName, reason string) error {
	body := fmt.Sprintf(`
		<h2>Membership application update</h2>
		<p>Dear %s,</p>
		<p>We were unable to approve your PSP-K membership application.</p>
		<p>Reason: %s</p>
		<p>You may submit a new application once the issue above has been addressed.</p>
	`, fullName, reason)
	return s.transport.Send(email, "Your PSP-K membership application", body)
}

func (s *emailService) SendResignationEmail(email, fullName string) error {
	body := fmt.Sprintf(`
		<h2>Resignation confirmed</h2>
		<p>Dear %s,</p>
		<p>Your resignation from the People's Solidarity Party of Kenya has been processed
		and your registration record has been removed.</p>
		<p>We are sorry to see you go. You are welcome back any time.</p>
	`, fullName)
	return s.transport.Send(email, "PSP-K resignation confirmed", body)
}

var requestTypeLabels = map[string]string{
	models.RequestCorrection: "data correction",
	models.RequestDeletion:   "data deletion",
}

func (s *emailService) SendDataRequestConfirmation(email, requestType string) error {
	body := fmt.Sprintf(`
		<h3>We received your %s request</h3>
		<p>Your request has been logged and will be handled by the party's data office
		within 14 days, as required by the Data Protection Act.</p>
	`, requestTypeLabels[requestType])
	return s.transport.Send(email, "PSP-K data request received", body)
}

func (s *emailService) NotifyAdminDataRequest(dr *models.DataRequest) error {
	if s.adminAddr == "" {
		return nil
	}
	details := "-"
	if dr.Details != nil {
		details = *dr.Details
	}
	reason := "-"
	if dr.Reason != nil {
		reason = *dr.Reason
	}
	body := fmt.Sprintf(`
		<h3>New %s request</h3>
		<p>Member: %s</p>
		<p>Reason: %s</p>
		<p>Details: %s</p>
		<p>Request ID: %s</p>
	`, requestTypeLabels[dr.RequestType], dr.Email, reason, details, dr.ID)
	return s.transport.Send(s.adminAddr, fmt.Sprintf("[PSP-K] New %s request", requestTypeLabels[dr.RequestType]), body)
}

func (s *emailService) SendContactRelay(c *models.Contact) error {
	if s.adminAddr == "" {
		return nil
	}
	subject := strings.TrimSpace(c.Subject)
	if subject == "" {
		subject = "Website contact message"
	}
	body := fmt.Sprintf(`
		<h3>%s</h3>
		<p>From: %s &lt;%s&gt;</p>
		<p>%s</p>
	`, subject, c.Name, c.Email, c.Message)
	return s.transport.Send(s.adminAddr, "[PSP-K contact] "+subject, body)
}

func (s *emailService) SendVolunteerAck(email, name string) error {
	body := fmt.Sprintf(`
		<h3>Thank you for volunteering, %s!</h3>
		<p>We have received your details. A coordinator from your county will reach out
		with upcoming opportunities.</p>
	`, name)
	return s.transport.Send(email, "PSP-K volunteer registration received", body)
}
