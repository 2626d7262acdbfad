package dto

import (
	"regexp"
	"strings"
	"time"

	"decor/shared/failure"
	"decor/shared/timezone"
)

const DateLayout = "2006-01-02"

var indianPhonePattern = regexp.MustCompile(`^[6-9]\d{9}$`)
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type CreateBookingRequest struct {
	Name      string   `json:"name"`
	Phone     string   `json:"phone"`
	Email     string   `json:"email"`
	ServiceID string   `json:"service_id"`
	PackageID string   `json:"package_id"`
	Date      string   `json:"date"`
	Time      string   `json:"time"`
	Address   string   `json:"address"`
	Guests    int      `json:"guests"`
	Message   string   `json:"message"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

// Validate enforces the booking form rules. Field order matches the form so
// the first error the caller sees is the first field they filled wrong.
func (c *CreateBookingRequest) Validate() error {
	if len(strings.TrimSpace(c.Name)) < 3 {
		return failure.BadRequestFromString("Name must be at least 3 characters")
	}

	if !indianPhonePattern.MatchString(c.Phone) {
		return failure.BadRequestFromString("Please enter a valid 10-digit Indian number")
	}

	if c.Email != "" && !emailPattern.MatchString(c.Email) {
		return failure.BadRequestFromString("Please enter a valid email address")
	}

	if c.ServiceID == "" {
		return failure.BadRequestFromString("Please select a service")
	}

	date, err := timezone.Parse(DateLayout, c.Date)
	if err != nil {
		return failure.BadRequestFromString("Please enter a valid event date")
	}

	today := timezone.Now()
	todayStart := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())

	if date.Before(todayStart) {
		return failure.BadRequestFromString("Event date cannot be in the past")
	}

	if strings.TrimSpace(c.Address) == "" {
		return failure.BadRequestFromString("Address is required")
	}

	if c.Guests < 5 {
		return failure.BadRequestFromString("Minimum 5 guests required")
	}

	return nil
}

type CreateInquiryRequest struct {
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	InterestedIn string `json:"interested_in"`
	Message      string `json:"message"`
}

func (c *CreateInquiryRequest) Validate() error {
	if len(strings.TrimSpace(c.Name)) < 3 {
		return failure.BadRequestFromString("Name must be at least 3 characters")
	}

	if !indianPhonePattern.MatchString(c.Phone) {
		return failure.BadRequestFromString("Please enter a valid 10-digit Indian number")
	}

	if len(strings.TrimSpace(c.Message)) < 10 {
		return failure.BadRequestFromString("Message must be at least 10 characters")
	}

	return nil
}

// HandoffResponse carries the composed message and the WhatsApp deep link the
// client should open.
type HandoffResponse struct {
	WhatsAppURL string `json:"whatsapp_url"`
	Message     string `json:"message"`
}
