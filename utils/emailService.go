package utils

import (
	"fmt"
	"net/smtp"

	"lms/config"
)

// SendVerificationEmail sends the account verification link. Callers fire it
// from a goroutine; a failed send never fails the request that triggered it.
func SendVerificationEmail(email, name, token string) error {
	from := config.AppConfig.EmailSender
	password := config.AppConfig.Password
	if from == "" || password == "" {
		return fmt.Errorf("email sender not configured")
	}

	verifyURL := fmt.Sprintf("%s/auth/verify-email?token=%s", config.AppConfig.BaseURL, token)

	subject := "Subject: Verify your email address\nMIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n\n"

	body := fmt.Sprintf(`
		<html>
			<body style="font-family: Arial, sans-serif; background-color: #f4f4f4; padding: 20px;">
				<div style="max-width: 500px; margin: auto; background-color: #ffffff; border-radius: 8px; padding: 30px;">
					<h2 style="color: #333333; text-align: center;">Welcome, %s!</h2>
					<p style="font-size: 16px; color: #555555;">Please confirm your email address to activate your account:</p>
					<p style="text-align: center; margin: 30px 0;">
						<a href="%s" style="background-color: #4CAF50; color: #ffffff; padding: 12px 24px; border-radius: 4px; text-decoration: none;">Verify Email</a>
					</p>
					<p style="font-size: 12px; color: #999999;">The link expires in 24 hours. If you did not register, ignore this email.</p>
				</div>
			</body>
		</html>
	`, name, verifyURL)

	message := []byte(subject + "\n" + body)
	auth := smtp.PlainAuth("", from, password, config.AppConfig.SMTPHost)
	addr := config.AppConfig.SMTPHost + ":" + config.AppConfig.SMTPPort

	return smtp.SendMail(addr, auth, from, []string{email}, message)
}

// SendEnrollmentEmail sends an email notification when a student enrolls in a course
func SendEnrollmentEmail(email, userName, courseName string) error {
	from := config.AppConfig.EmailSender
	password := config.AppConfig.Password
	if from == "" || password == "" {
		return fmt.Errorf("email sender not configured")
	}

	subject := "Subject: Course Enrollment Confirmation\nMIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n\n"

	body := fmt.Sprintf(`
		<html>
			<body style="font-family: Arial, sans-serif; background-color: #f4f4f4; padding: 20px;">
				<div style="max-width: 600px; margin: auto; background-color: #ffffff; border-radius: 8px; padding: 30px;">
					<h2 style="color: #333333; text-align: center;">Enrollment Successful!</h2>
					<p style="font-size: 16px; color: #555555;">Dear %s,</p>
					<p style="font-size: 16px; color: #555555;">You have successfully enrolled in:</p>
					<h3 style="text-align: center; color: #4CAF50; margin: 20px 0;">%s</h3>
					<p style="font-size: 14px; color: #666666;">You can now access all the course content and start learning.</p>
					<p style="font-size: 14px; color: #999999; text-align: center; margin-top: 30px;">Happy Learning!</p>
				</div>
			</body>
		</html>
	`, userName, courseName)

	message := []byte(subject + "\n" + body)
	auth := smtp.PlainAuth("", from, password, config.AppConfig.SMTPHost)
	addr := config.AppConfig.SMTPHost + ":" + config.AppConfig.SMTPPort

	return smtp.SendMail(addr, auth, from, []string{email}, message)
}
