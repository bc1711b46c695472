package tables

import "testing"

func TestAttachmentType(t *testing.T) {
	tests := []struct {
		code   string
		want   string
		wantOk bool
	}{
		{"MD01", "ATX015", true},
		{"MD03", "ATX019", true},
		{"MD22", "ATX003", true},
		{"MD54", "ATX006", true},
		{"MD99", "ATX099", true},
		// Case-insensitive, trimmed
		{"md01", "ATX015", true},
		{" MD01 ", "ATX015", true},
		// Unmapped
		{"MD77", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		got, ok := AttachmentType(tt.code)
		if got != tt.want || ok != tt.wantOk {
			t.Errorf("AttachmentType(%q) = (%q, %v), want (%q, %v)", tt.code, got, ok, tt.want, tt.wantOk)
		}
	}
}

func TestRelationType(t *testing.T) {
	tests := []struct {
		ref    string
		want   string
		wantOk bool
	}{
		{"accessories", "ACCESSORY", true},
		{"accessory", "ACCESSORY", true},
		{"sparepart", "SPAREPART", true},
		{"spare_part", "SPAREPART", true},
		{"consists_of", "CONSISTS_OF", true},
		{"followup", "SUCCESSOR", true},
		{"Similar", "SIMILAR", true},
		{"others", "OTHER", true},
		{"unrelated", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		got, ok := RelationType(tt.ref)
		if got != tt.want || ok != tt.wantOk {
			t.Errorf("RelationType(%q) = (%q, %v), want (%q, %v)", tt.ref, got, ok, tt.want, tt.wantOk)
		}
	}
}

func TestProductStatus(t *testing.T) {
	tests := []struct {
		status string
		want   string
		wantOk bool
	}{
		{"new", "ACTIVE", true},
		{"core_product", "ACTIVE", true},
		{"old", "OBSOLETE", true},
		{"OLD_PRODUCT", "OBSOLETE", true},
		{"refurbished", "ACTIVE", true},
		{"discontinued", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		got, ok := ProductStatus(tt.status)
		if got != tt.want || ok != tt.wantOk {
			t.Errorf("ProductStatus(%q) = (%q, %v), want (%q, %v)", tt.status, got, ok, tt.want, tt.wantOk)
		}
	}
}
