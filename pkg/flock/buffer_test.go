package flock

import (
	"errors"
	"testing"
)

func TestDecodeBuffer_Stride4(t *testing.T) {
	buf := []float32{
		100, 200, 3, -4,
		50, 60, 0, 0,
	}

	agents, err := DecodeBuffer(buf, Stride4)
	if err != nil {
		t.Fatalf("DecodeBuffer failed: %v", err)
	}
	if len(agents) != 2 {
		t.Fatalf("Expected 2 agents, got %d", len(agents))
	}
	if agents[0].Pos.X != 100 || agents[0].Pos.Y != 200 {
		t.Errorf("Agent 0 position wrong: %v", agents[0].Pos)
	}
	if agents[0].Vel.X != 3 || agents[0].Vel.Y != -4 {
		t.Errorf("Agent 0 velocity wrong: %v", agents[0].Vel)
	}
	if agents[0].Flags != 0 || agents[1].Flags != 0 {
		t.Error("Expected zero flags when decoding the 4-wide form")
	}
}

func TestDecodeBuffer_Stride5Flags(t *testing.T) {
	buf := []float32{
		100, 200, 3, -4, 1,
		50, 60, 0, 0, 0,
	}

	agents, err := DecodeBuffer(buf, Stride5)
	if err != nil {
		t.Fatalf("DecodeBuffer failed: %v", err)
	}
	if !agents[0].InMargin() {
		t.Error("Expected agent 0 margin flag set from the flags slot")
	}
	if agents[1].Flags != 0 {
		t.Errorf("Expected agent 1 flags zero, got %d", agents[1].Flags)
	}
}

func TestDecodeBuffer_MalformedLength(t *testing.T) {
	// 7 floats cannot hold whole agents at stride 4: rejected outright,
	// never truncated to the first record.
	buf := []float32{1, 2, 3, 4, 5, 6, 7}

	agents, err := DecodeBuffer(buf, Stride4)
	if !errors.Is(err, ErrMalformedBuffer) {
		t.Fatalf("Expected ErrMalformedBuffer, got %v", err)
	}
	if agents != nil {
		t.Errorf("Expected nil agents on error, got %v", agents)
	}
}

func TestDecodeBuffer_BadStride(t *testing.T) {
	buf := []float32{1, 2, 3}

	if _, err := DecodeBuffer(buf, 3); !errors.Is(err, ErrMalformedBuffer) {
		t.Fatalf("Expected ErrMalformedBuffer for stride 3, got %v", err)
	}
}

func TestBuffer_RoundTripStride5(t *testing.T) {
	// Decoding a 5-wide buffer and encoding it back reproduces the buffer
	// exactly, flags included.
	buf := []float32{
		10.5, 20.25, -1.5, 2.75, 1,
		300, 400, 0, -60, 0,
		0.125, 599.5, 59.5, -0.5, 1,
	}

	agents, err := DecodeBuffer(buf, Stride5)
	if err != nil {
		t.Fatalf("DecodeBuffer failed: %v", err)
	}
	out := EncodeBuffer(agents)

	if len(out) != len(buf) {
		t.Fatalf("Expected %d floats, got %d", len(buf), len(out))
	}
	for i := range buf {
		if out[i] != buf[i] {
			t.Errorf("Index %d: expected %f, got %f", i, buf[i], out[i])
		}
	}
}

func TestEncodeBuffer_Empty(t *testing.T) {
	if out := EncodeBuffer(nil); len(out) != 0 {
		t.Errorf("Expected empty output for empty population, got %v", out)
	}
}
