package ingest

import (
	"testing"

	"dyne/salesboard/internal/constants"
)

func TestNormalizeKey(t *testing.T) {
	tests := []struct{ in, want string }{
		{"Order Date", "order_date"},
		{"  ORDER   DATE  ", "order_date"},
		{"order_date", "order_date"},
		{"OrderDate", "orderdate"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := NormalizeKey(tt.in); got != tt.want {
			t.Errorf("NormalizeKey(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFindColumnCaseAndUnderscoreInsensitive(t *testing.T) {
	aliases := constants.SalesColumnAliases["order_date"]

	for _, header := range []string{"Order Date", "order_date", "OrderDate", "DATE"} {
		got, ok := FindColumn([]string{"irrelevant", header}, aliases)
		if !ok {
			t.Errorf("header %q should resolve to order_date", header)
			continue
		}
		if got != header {
			t.Errorf("resolved header should be the original string %q, got %q", header, got)
		}
	}
}

func TestFindColumnAliasPriority(t *testing.T) {
	// "price" is declared before "unit_price": when both headers are
	// present the earlier alias must win regardless of column order.
	headers := []string{"Unit Price", "Price"}
	got, ok := FindColumn(headers, []string{"price", "unit_price"})
	if !ok || got != "Price" {
		t.Errorf("expected Price to win by alias priority, got %q (ok=%v)", got, ok)
	}
}

func TestFindColumnFirstHeaderWins(t *testing.T) {
	// Two headers satisfy the same alias: file column order decides.
	headers := []string{"Order Date", "ORDER_DATE"}
	got, ok := FindColumn(headers, []string{"order_date"})
	if !ok || got != "Order Date" {
		t.Errorf("expected first matching column, got %q (ok=%v)", got, ok)
	}
}

func TestResolveColumns(t *testing.T) {
	headers := []string{"Product Name", "Discounted_Price", "Categories", "Qty"}
	cols := ResolveColumns(headers, constants.SalesColumnAliases)

	if cols["product_name"] != "Product Name" {
		t.Errorf("product_name resolved to %q", cols["product_name"])
	}
	if cols["price"] != "Discounted_Price" {
		t.Errorf("price resolved to %q", cols["price"])
	}
	if cols["total_amount"] != "Discounted_Price" {
		t.Errorf("total_amount resolved to %q", cols["total_amount"])
	}
	if cols["category"] != "Categories" {
		t.Errorf("category resolved to %q", cols["category"])
	}
	if cols["quantity"] != "Qty" {
		t.Errorf("quantity resolved to %q", cols["quantity"])
	}
	if _, ok := cols["order_date"]; ok {
		t.Error("order_date should be unresolved for this header set")
	}
	if _, ok := cols["region"]; ok {
		t.Error("region should be unresolved for this header set")
	}
}

func TestNormalizeRowKeys(t *testing.T) {
	row := RawRow{"Product Name": "Widget", "RATING": "4.5"}
	out := NormalizeRowKeys(row)
	if out["product_name"] != "Widget" {
		t.Errorf("expected product_name key, got %v", out)
	}
	if out["rating"] != "4.5" {
		t.Errorf("expected rating key, got %v", out)
	}
}
