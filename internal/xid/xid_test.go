package xid

import (
	"strings"
	"testing"
	"time"
)

func TestNewIsPrefixedAndUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := New("veh")
		if !strings.HasPrefix(id, "veh-") {
			t.Fatalf("expected veh- prefix, got %s", id)
		}
		if seen[id] {
			t.Fatalf("duplicate id generated: %s", id)
		}
		seen[id] = true
	}
}

func TestInvoiceNoIsDeterministicForInstant(t *testing.T) {
	at := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)
	first := InvoiceNo(at)
	if first != InvoiceNo(at) {
		t.Fatalf("expected stable invoice number for a fixed instant")
	}
	if !strings.HasPrefix(first, "INV-") {
		t.Fatalf("expected INV- prefix, got %s", first)
	}
	if first == InvoiceNo(at.Add(time.Second)) {
		t.Fatalf("expected different invoice numbers for different instants")
	}
}

func TestTradeVINPrefix(t *testing.T) {
	vin := TradeVIN(time.Now())
	if !strings.HasPrefix(vin, "TRADE-") {
		t.Fatalf("expected TRADE- prefix, got %s", vin)
	}
	if vin != strings.ToUpper(vin) {
		t.Fatalf("expected upper-case VIN, got %s", vin)
	}
}
