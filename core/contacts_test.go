package core

import (
	"context"
	"testing"
)

type memContactStore struct {
	contacts []Contact
}

func (m *memContactStore) Create(ctx context.Context, c *Contact) error {
	m.contacts = append(m.contacts, *c)
	return nil
}

func (m *memContactStore) List(ctx context.Context) ([]Contact, error) {
	return append([]Contact(nil), m.contacts...), nil
}

func (m *memContactStore) Delete(ctx context.Context, id string) error {
	for i, c := range m.contacts {
		if c.ID == id {
			m.contacts = append(m.contacts[:i], m.contacts[i+1:]...)
			break
		}
	}
	return nil
}

func TestSubmitContact(t *testing.T) {
	store := &memContactStore{}
	notifier := &recordingNotifier{}
	svc := NewService(Options{JWTSecret: []byte("test-secret")}).
		WithContactStore(store).
		WithNotifier(notifier)

	created, err := svc.SubmitContact(context.Background(), Contact{
		Name:        "  Ana Pop  ",
		Email:       "ana@example.com",
		Service:     "social-media",
		Budget:      "1000-2000",
		Description: "need help with content",
	})
	if err != nil {
		t.Fatalf("SubmitContact failed: %v", err)
	}
	if created.ID == "" {
		t.Fatalf("expected a generated id")
	}
	if created.Name != "Ana Pop" {
		t.Fatalf("name not trimmed: %q", created.Name)
	}
	if created.Status != "new" {
		t.Fatalf("status = %q, want new", created.Status)
	}
	if len(notifier.events) != 1 || notifier.events[0] != "new-contact" {
		t.Fatalf("expected new-contact notification, got %v", notifier.events)
	}

	list, err := svc.ListContacts(context.Background())
	if err != nil {
		t.Fatalf("ListContacts failed: %v", err)
	}
	if len(list) != 1 || list[0].ID != created.ID {
		t.Fatalf("unexpected listing %+v", list)
	}
}

func TestDeleteContact(t *testing.T) {
	store := &memContactStore{}
	notifier := &recordingNotifier{}
	svc := NewService(Options{JWTSecret: []byte("test-secret")}).
		WithContactStore(store).
		WithNotifier(notifier)

	created, err := svc.SubmitContact(context.Background(), Contact{Name: "Ana", Email: "ana@example.com"})
	if err != nil {
		t.Fatalf("SubmitContact failed: %v", err)
	}
	if err := svc.DeleteContact(context.Background(), created.ID); err != nil {
		t.Fatalf("DeleteContact failed: %v", err)
	}
	if len(store.contacts) != 0 {
		t.Fatalf("contact not removed")
	}
	if notifier.events[len(notifier.events)-1] != "contact-deleted" {
		t.Fatalf("expected contact-deleted notification, got %v", notifier.events)
	}
}
