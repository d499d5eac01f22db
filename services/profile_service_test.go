package services

import (
	"context"
	"errors"
	"testing"
)

func TestProfileGetBeforeSave(t *testing.T) {
	db := testDB(t)
	svc := NewProfileService(db)

	_, err := svc.Get(context.Background(), "u1")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}

func TestProfileSaveThenGet(t *testing.T) {
	db := testDB(t)
	svc := NewProfileService(db)

	if _, err := svc.Save(context.Background(), "u1", "Me cuesta expresar enojo", "aprender a poner límites"); err != nil {
		t.Fatalf("Save: %v", err)
	}

	profile, err := svc.Get(context.Background(), "u1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if profile.EmotionalProfile != "Me cuesta expresar enojo" {
		t.Errorf("EmotionalProfile = %q", profile.EmotionalProfile)
	}
	if profile.TrainingGoals != "aprender a poner límites" {
		t.Errorf("TrainingGoals = %q", profile.TrainingGoals)
	}
}

func TestProfileLastWriteWins(t *testing.T) {
	db := testDB(t)
	svc := NewProfileService(db)

	if _, err := svc.Save(context.Background(), "u1", "primera versión del perfil", "meta inicial"); err != nil {
		t.Fatalf("first Save: %v", err)
	}
	if _, err := svc.Save(context.Background(), "u1", "versión corregida del perfil", "meta nueva"); err != nil {
		t.Fatalf("second Save: %v", err)
	}

	profile, err := svc.Get(context.Background(), "u1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if profile.EmotionalProfile != "versión corregida del perfil" {
		t.Errorf("EmotionalProfile = %q, want last write", profile.EmotionalProfile)
	}
	if profile.TrainingGoals != "meta nueva" {
		t.Errorf("TrainingGoals = %q, want last write", profile.TrainingGoals)
	}
}

func TestProfileIsolatedPerUser(t *testing.T) {
	db := testDB(t)
	svc := NewProfileService(db)

	if _, err := svc.Save(context.Background(), "u1", "perfil de u1 con suficiente detalle", "meta u1"); err != nil {
		t.Fatalf("Save: %v", err)
	}

	_, err := svc.Get(context.Background(), "u2")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}
