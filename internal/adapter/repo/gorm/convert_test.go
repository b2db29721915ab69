package gormrepo

import (
	"context"
	"errors"
	"math"
	"testing"

	"petbowl/internal/domain/world"
)

func TestToInt32_RejectsOverflow(t *testing.T) {
	if v, err := toInt32("x", math.MaxInt32); err != nil || v != math.MaxInt32 {
		t.Fatalf("expected max int32 kept, got %d err=%v", v, err)
	}
	if _, err := toInt32("x", math.MaxInt32+1); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("expected ErrOutOfRange, got %v", err)
	}
	if _, err := toInt32s([]string{"x", "y"}, 1, math.MinInt32-1); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("expected ErrOutOfRange for y, got %v", err)
	}
}

func TestFarmRepo_OutOfRangeFailsBeforeQuery(t *testing.T) {
	repo := NewFarmRepo(nil)
	ctx := context.Background()
	b := world.Building{ID: "bowl", Kind: world.BuildingPetBowl, Anchor: world.Point{X: math.MaxInt32 + 1}, Width: 2, Height: 2}
	if err := repo.SaveBuilding(ctx, "home", b); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("expected ErrOutOfRange for building, got %v", err)
	}
	o := world.Object{ID: "s", Kind: world.ObjectSprinkler, Position: world.Point{Y: math.MinInt32 - 1}}
	if err := repo.SaveObject(ctx, "home", o); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("expected ErrOutOfRange for object, got %v", err)
	}
	if err := repo.SetDay(ctx, "home", math.MaxInt32+1); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("expected ErrOutOfRange for day, got %v", err)
	}
}
