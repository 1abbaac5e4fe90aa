package utils

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/lifevault/lifevault-api/config"
	"github.com/lifevault/lifevault-api/models"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// SendEmail delivers a single HTML mail through SendGrid.
func SendEmail(to, subject, htmlBody string) error {
	from := mail.NewEmail("LifeVault", config.AppConfig.EmailSender)
	recipient := mail.NewEmail("", to)
	message := mail.NewSingleEmail(from, subject, recipient, "", htmlBody)

	client := sendgrid.NewSendClient(config.AppConfig.SendGridApiKey)
	resp, err := client.Send(message)
	if err != nil {
		log.Printf("Error sending email to %s: %v", to, err)
		return err
	}
	if resp.StatusCode >= 400 {
		log.Printf("SendGrid rejected email to %s: %d %s", to, resp.StatusCode, resp.Body)
		return fmt.Errorf("sendgrid responded with %d", resp.StatusCode)
	}

	log.Printf("Email sent successfully to %s", to)
	return nil
}

// SendClaimApprovedEmail notifies a claimant that their vault request was verified.
func SendClaimApprovedEmail(email, name, referenceNo string) error {
	subject := "Your LifeVault Claim Has Been Verified"
	body := fmt.Sprintf(`
		<html>
			<body style="font-family: Arial, sans-serif; background-color: #f4f4f4; padding: 20px;">
				<div style="max-width: 500px; margin: auto; background-color: #ffffff; border-radius: 8px; padding: 30px;">
					<h2 style="color: #333333; text-align: center;">Claim Verified</h2>
					<p style="font-size: 16px; color: #555555;">Dear %s,</p>
					<p style="font-size: 16px; color: #555555;">Your vault request <strong>%s</strong> has been verified. The vault has been opened and our team will contact you with the next steps.</p>
					<p style="text-align: center; font-size: 12px; color: #bbbbbb; margin-top: 30px;">LifeVault Team</p>
				</div>
			</body>
		</html>
	`, name, referenceNo)

	return SendEmail(email, subject, body)
}

// SendClaimRejectedEmail notifies a claimant that their vault request was rejected.
func SendClaimRejectedEmail(email, name, referenceNo, reason string) error {
	subject := "Update on Your LifeVault Claim"
	body := fmt.Sprintf(`
		<html>
			<body style="font-family: Arial, sans-serif; background-color: #f4f4f4; padding: 20px;">
				<div style="max-width: 500px; margin: auto; background-color: #ffffff; border-radius: 8px; padding: 30px;">
					<h2 style="color: #333333; text-align: center;">Claim Rejected</h2>
					<p style="font-size: 16px; color: #555555;">Dear %s,</p>
					<p style="font-size: 16px; color: #555555;">Your vault request <strong>%s</strong> could not be verified.</p>
					<div style="background: #fdf2f2; padding: 15px; border-radius: 4px; border-left: 4px solid #dc2626; margin: 20px 0;">%s</div>
					<p style="font-size: 14px; color: #999999;">You may submit a new request with the corrected documents.</p>
					<p style="text-align: center; font-size: 12px; color: #bbbbbb; margin-top: 30px;">LifeVault Team</p>
				</div>
			</body>
		</html>
	`, name, referenceNo, reason)

	return SendEmail(email, subject, body)
}

// SendPendingClaimDigest mails admins the list of claims waiting for review.
func SendPendingClaimDigest(adminEmail string, requests []models.VaultRequest) error {
	subject := fmt.Sprintf("%d LifeVault claims awaiting review", len(requests))

	var rows strings.Builder
	for _, req := range requests {
		rows.WriteString(fmt.Sprintf(
			`<tr><td style="padding: 8px; border-bottom: 1px solid #eee;">%s</td><td style="padding: 8px; border-bottom: 1px solid #eee;">%s</td><td style="padding: 8px; border-bottom: 1px solid #eee;">%s</td></tr>`,
			req.ReferenceNo, req.NomineeName, req.CreatedAt.Format("January 2, 2006"),
		))
	}

	body := fmt.Sprintf(`
		<html>
			<body style="font-family: Arial, sans-serif; background-color: #f4f4f4; padding: 20px;">
				<div style="max-width: 600px; margin: auto; background-color: #ffffff; border-radius: 8px; padding: 30px;">
					<h2 style="color: #333333;">Pending Vault Requests</h2>
					<p style="font-size: 14px; color: #555555;">The following claims have been pending for more than 72 hours as of %s:</p>
					<table style="width: 100%%; border-collapse: collapse; font-size: 14px; color: #333333;">
						<tr><th style="text-align: left; padding: 8px;">Reference</th><th style="text-align: left; padding: 8px;">Nominee</th><th style="text-align: left; padding: 8px;">Submitted</th></tr>
						%s
					</table>
					<p style="text-align: center; font-size: 12px; color: #bbbbbb; margin-top: 30px;">This is an automated digest from LifeVault.</p>
				</div>
			</body>
		</html>
	`, time.Now().Format("January 2, 2006"), rows.String())

	return SendEmail(adminEmail, subject, body)
}
