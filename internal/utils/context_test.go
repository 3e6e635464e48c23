// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-auth-gate/models"
)

func TestContextKeyString(t *testing.T) {
	key := contextKey("testKey")
	if key.String() != "testKey" {
		t.Errorf("expected 'testKey', got '%s'", key.String())
	}
}

func TestGetIdentityResolutionFromContext_Present(t *testing.T) {
	want := models.Identity{UserID: 7, Email: "a@b.com"}
	ctx := WithIdentityResolution(context.Background(), IdentityResolution{Identity: want, Present: true})

	res, ok := GetIdentityResolutionFromContext(ctx)

	if !ok {
		t.Fatal("expected ok=true, got false")
	}
	if !res.Present || res.Identity != want {
		t.Errorf("expected %+v, got %+v", want, res)
	}
}

func TestGetIdentityResolutionFromContext_Missing(t *testing.T) {
	_, ok := GetIdentityResolutionFromContext(context.Background())
	if ok {
		t.Error("expected no resolution for empty context")
	}
}

func TestGetIdentityResolutionFromContext_Fault(t *testing.T) {
	ctx := WithIdentityResolution(context.Background(), IdentityResolution{Err: errors.New("db down")})

	res, ok := GetIdentityResolutionFromContext(ctx)
	if !ok {
		t.Fatal("expected resolution to be stored")
	}
	if res.Present {
		t.Error("a failed resolution carries no identity")
	}
	if res.Anonymous() {
		t.Error("a failed resolution must not be reported as anonymous")
	}
}

func TestIdentityResolution_Anonymous(t *testing.T) {
	if !(IdentityResolution{}).Anonymous() {
		t.Error("zero resolution must be anonymous")
	}
	if (IdentityResolution{Present: true}).Anonymous() {
		t.Error("present identity must not be anonymous")
	}
}

func TestGetIdentityResolutionFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), IdentityCtxKey, "not-a-resolution")

	if _, ok := GetIdentityResolutionFromContext(ctx); ok {
		t.Error("expected ok=false for wrong value type")
	}
}
