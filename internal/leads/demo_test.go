package leads

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validDemo() DemoRequest {
	return DemoRequest{
		FullName:   "Ana Ruiz",
		Email:      "ana@retail.test",
		Company:    "Retail Co",
		StoreCount: "11-50",
		Message:    "We run 40 stores.",
	}
}

func TestDemoRequest_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*DemoRequest)
		want   map[string]string
	}{
		{"valid", func(d *DemoRequest) {}, nil},
		{"optional fields empty", func(d *DemoRequest) { d.StoreCount = ""; d.Message = "" }, nil},
		{"missing name", func(d *DemoRequest) { d.FullName = "" }, map[string]string{FieldFullName: "required"}},
		{"missing email", func(d *DemoRequest) { d.Email = "" }, map[string]string{FieldEmail: "required"}},
		{"bad email", func(d *DemoRequest) { d.Email = "not-an-email" }, map[string]string{FieldEmail: "email"}},
		{"missing company", func(d *DemoRequest) { d.Company = "" }, map[string]string{FieldCompany: "required"}},
		{"unknown store count", func(d *DemoRequest) { d.StoreCount = "1000" }, map[string]string{FieldStoreCount: "oneof"}},
		{
			"everything missing",
			func(d *DemoRequest) { *d = DemoRequest{} },
			map[string]string{FieldFullName: "required", FieldEmail: "required", FieldCompany: "required"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := validDemo()
			tt.mutate(&d)
			assert.Equal(t, tt.want, d.Validate())
		})
	}
}

func TestDemoRequest_NormalizeTrims(t *testing.T) {
	d := DemoRequest{FullName: "  Ana  ", Email: " ana@retail.test ", Company: "\tRetail Co\n"}.Normalize()

	assert.Equal(t, "Ana", d.FullName)
	assert.Equal(t, "ana@retail.test", d.Email)
	assert.Equal(t, "Retail Co", d.Company)
	assert.Nil(t, d.Validate())
}

func TestDemoRequest_Payload(t *testing.T) {
	p := validDemo().Payload()
	assert.Equal(t, "11-50", p.StoreCount)
	assert.Equal(t, "We run 40 stores.", p.Message)

	empty := DemoRequest{FullName: "Ana", Email: "ana@retail.test", Company: "Retail Co"}.Payload()
	assert.Equal(t, "Not specified", empty.StoreCount)
	assert.Equal(t, "No additional message", empty.Message)
}

func TestValidateEmail(t *testing.T) {
	assert.Equal(t, "", ValidateEmail("ops@acme.test"))
	assert.Equal(t, "", ValidateEmail("  ops@acme.test  "))
	assert.Equal(t, "required", ValidateEmail(""))
	assert.Equal(t, "email", ValidateEmail("ops@"))
}

func TestStoreCountOptions(t *testing.T) {
	for _, opt := range StoreCountOptions {
		d := validDemo()
		d.StoreCount = opt
		assert.Nil(t, d.Validate(), opt)
	}
}
