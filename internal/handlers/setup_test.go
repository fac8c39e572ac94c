package handlers

import (
	"context"
	"errors"
	"testing"

	"github.com/ceylontrails/tourism-api/internal/auth"
	"github.com/ceylontrails/tourism-api/internal/models"
	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type sentMail struct {
	To      string
	Subject string
	Body    string
}

type recorderMailer struct {
	sent []sentMail
}

func (m *recorderMailer) Send(to, subject, body string) error {
	m.sent = append(m.sent, sentMail{To: to, Subject: subject, Body: body})
	return nil
}

type failingMailer struct{}

func (failingMailer) Send(to, subject, body string) error {
	return errors.New("smtp unavailable")
}

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}
	err = db.AutoMigrate(
		&models.User{},
		&models.Hotel{},
		&models.Vehicle{},
		&models.Package{},
		&models.Booking{},
		&models.TourRequest{},
	)
	if err != nil {
		t.Fatalf("failed to auto migrate: %v", err)
	}
	return db
}

func ctxWithRole(userID uuid.UUID, role models.Role) context.Context {
	claims := auth.Claims{UserID: userID, Role: role}
	return context.WithValue(context.Background(), auth.ClaimsKey, claims)
}
