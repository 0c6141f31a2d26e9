package service

import (
	"bytes"
	"fmt"
	"html/template"
	"log"
	"path/filepath"
	"time"

	"nailstudio/internal/entities"
)

type SenderService struct {
}

func NewSenderService() *SenderService {
	return &SenderService{}
}

// SendAppointmentEmail notifies the client about the state of their booking.
// Sending happens in a goroutine so the request path never waits on SendGrid.
func (s *SenderService) SendAppointmentEmail(appt entities.AppointmentResponse, status string) {
	if appt.ClientEmail == "" {
		return
	}

	salon := salonName()
	emailData := entities.AppointmentEmailData{
		ClientName:    appt.ClientName,
		ServiceName:   appt.ServiceName,
		DateFormatted: formatAppointmentDate(appt.AppointmentDate),
		TimeFormatted: appt.AppointmentTime,
		Status:        status,
		SalonName:     salon,
		CurrentYear:   time.Now().In(salonLocation()).Year(),
	}

	emailSubject := fmt.Sprintf("Your %s appointment is %s", salon, status)
	plainTextBody := fmt.Sprintf(
		"Hello %s,\n\nYour appointment at %s is %s.\n\n"+
			"Appointment details:\n"+
			"Service: %s\n"+
			"Date: %s\n"+
			"Time: %s\n\n"+
			"Thank you for choosing %s.\n\n"+
			"%s. All rights reserved.",
		emailData.ClientName, salon, status,
		emailData.ServiceName, emailData.DateFormatted, emailData.TimeFormatted,
		salon, salon,
	)

	tmplPath := filepath.Join("internal", "templates", "appointment_email.html")
	tmpl, err := template.ParseFiles(tmplPath)
	if err != nil {
		log.Printf("ALERT: Error parsing HTML email template (%s): %v", tmplPath, err)
		return
	}

	var htmlBodyBuffer bytes.Buffer
	if err := tmpl.Execute(&htmlBodyBuffer, emailData); err != nil {
		log.Printf("ALERT: Error executing HTML email template for appointment %d: %v", appt.ID, err)
	}
	htmlBody := htmlBodyBuffer.String()

	go func(toEmail, clientName, subject, plainBody, htmlBodyContent string) {
		errEmail := SendEmailWithSendGrid(toEmail, clientName, subject, plainBody, htmlBodyContent)
		if errEmail != nil {
			log.Printf("ALERT (async): email sending failed for appointment %d: %v", appt.ID, errEmail)
		}
	}(appt.ClientEmail, emailData.ClientName, emailSubject, plainTextBody, htmlBody)
}

func (s *SenderService) SendAppointmentSMS(appt entities.AppointmentResponse, status string) {
	if appt.ClientPhone == "" {
		return
	}

	smsMessage := fmt.Sprintf("%s: your appointment on %s at %s is %s.\nMore details in your email.",
		salonName(), formatAppointmentDate(appt.AppointmentDate), appt.AppointmentTime, status)

	go func(toNumber, body string) {
		if errSMS := SendSMS(toNumber, body); errSMS != nil {
			log.Printf("ALERT (async): SMS sending failed for appointment %d to %s: %v", appt.ID, toNumber, errSMS)
		}
	}(appt.ClientPhone, smsMessage)
}

// SendAppointmentReminder is used by the morning cron run for next-day
// confirmed appointments.
func (s *SenderService) SendAppointmentReminder(appt entities.AppointmentResponse) {
	salon := salonName()
	if appt.ClientEmail != "" {
		subject := fmt.Sprintf("Reminder: your %s appointment tomorrow", salon)
		body := fmt.Sprintf(
			"Hello %s,\n\nThis is a reminder about your appointment at %s tomorrow, %s at %s.\n\nSee you soon!\n%s",
			appt.ClientName, salon, formatAppointmentDate(appt.AppointmentDate), appt.AppointmentTime, salon,
		)
		go func() {
			if err := SendEmailWithSendGrid(appt.ClientEmail, appt.ClientName, subject, body, ""); err != nil {
				log.Printf("ALERT (async): reminder email failed for appointment %d: %v", appt.ID, err)
			}
		}()
	}
	if appt.ClientPhone != "" {
		sms := fmt.Sprintf("%s: reminder, you have an appointment tomorrow at %s.", salon, appt.AppointmentTime)
		go func() {
			if err := SendSMS(appt.ClientPhone, sms); err != nil {
				log.Printf("ALERT (async): reminder SMS failed for appointment %d: %v", appt.ID, err)
			}
		}()
	}
}

func formatAppointmentDate(date string) string {
	parsed, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date
	}
	return parsed.Format("02 Jan 2006")
}
