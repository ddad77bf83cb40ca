package utils

import (
	"fmt"
	"log"
	"net/smtp"
	"strings"

	"folio/config"
)

// SendEmail sends an HTML email through the configured SMTP account.
// A missing EMAIL_SENDER disables sending entirely.
func SendEmail(to []string, subject string, htmlBody string) error {
	smtpHost := "smtp.gmail.com"
	smtpPort := "587"

	from := config.AppConfig.EmailSender
	password := config.AppConfig.Password

	if from == "" {
		log.Printf("Email disabled, skipping: %s", subject)
		return nil
	}

	// MIME basics
	msg := "MIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n"
	msg += fmt.Sprintf("From: %s <%s>\r\n", config.AppConfig.SiteName, from)
	msg += fmt.Sprintf("To: %s\r\n", strings.Join(to, ","))
	msg += fmt.Sprintf("Subject: %s\r\n\r\n", subject)
	msg += htmlBody

	auth := smtp.PlainAuth("", from, password, smtpHost)

	err := smtp.SendMail(smtpHost+":"+smtpPort, auth, from, to, []byte(msg))
	if err != nil {
		log.Printf("Error sending email %q: %v", subject, err)
		return err
	}
	return nil
}

// getEmailTemplate wraps body content in the site's email layout
func getEmailTemplate(title string, bodyContent string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; background-color: #F6F6F6; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #FFFFFF; border-radius: 8px; overflow: hidden; box-shadow: 0 4px 15px rgba(0,0,0,0.05); }
			.header { background-color: #1A1A2E; padding: 30px; text-align: center; }
			.header h1 { color: #FFFFFF; margin: 0; font-size: 24px; letter-spacing: 1px; }
			.content { padding: 40px 30px; color: #1A1A2E; line-height: 1.6; }
			.content h2 { color: #1A1A2E; margin-top: 0; }
			.footer { background-color: #F6F6F6; padding: 20px; text-align: center; font-size: 12px; color: #666666; border-top: 1px solid #E0E0E0; }
			.info-box { background: #E8F0FE; padding: 15px; border-radius: 4px; border-left: 4px solid #6C63FF; margin: 20px 0; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header">
				<h1>%s</h1>
			</div>
			<div class="content">
				<h2>%s</h2>
				%s
			</div>
			<div class="footer">
				You are receiving this because of activity on %s.
			</div>
		</div>
	</body>
	</html>
	`, strings.ToUpper(config.AppConfig.SiteName), title, bodyContent, config.AppConfig.SiteName)
}

// --- Triggers ---

// SendEnrollmentEmail confirms a new course enrollment
func SendEnrollmentEmail(email, name, courseTitle string) {
	subject := "Enrolled: " + courseTitle
	body := fmt.Sprintf(`
		<p>Hi %s,</p>
		<p>You are now enrolled in <strong>%s</strong>.</p>
		<p>Your progress is saved automatically as you complete modules. Pick up where you left off any time.</p>
	`, name, courseTitle)

	go SendEmail([]string{email}, subject, getEmailTemplate("Enrollment Confirmed", body))
}

// SendCourseCompletionEmail congratulates a user on finishing a course
func SendCourseCompletionEmail(email, name, courseTitle, certificateNumber string) {
	subject := "Course Completed: " + courseTitle
	body := fmt.Sprintf(`
		<p>Hi %s,</p>
		<p>Congratulations! You have completed every module of <strong>%s</strong>.</p>
		<div class="info-box">
			<strong>Certificate number:</strong> %s
		</div>
		<p>Your certificate is available on your profile page.</p>
	`, name, courseTitle, certificateNumber)

	go SendEmail([]string{email}, subject, getEmailTemplate("Congratulations!", body))
}

// SendContactNotification forwards a contact-form message to the site owner
func SendContactNotification(fromName, fromEmail, messageSubject, messageBody string) {
	owner := config.AppConfig.OwnerEmail
	if owner == "" {
		return
	}

	subject := "New contact message: " + messageSubject
	body := fmt.Sprintf(`
		<p><strong>From:</strong> %s &lt;%s&gt;</p>
		<div class="info-box">%s</div>
	`, fromName, fromEmail, messageBody)

	go SendEmail([]string{owner}, subject, getEmailTemplate("Contact Form", body))
}

// SendWeeklyDigest mails the owner a summary of the week's course activity
func SendWeeklyDigest(enrollments, completions int64) {
	owner := config.AppConfig.OwnerEmail
	if owner == "" {
		return
	}

	subject := "Weekly course digest"
	body := fmt.Sprintf(`
		<p>Course activity over the past week:</p>
		<div class="info-box">
			<strong>New enrollments:</strong> %d<br>
			<strong>Courses completed:</strong> %d
		</div>
	`, enrollments, completions)

	go SendEmail([]string{owner}, subject, getEmailTemplate("Weekly Digest", body))
}
