package render

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mmynk/moneysplitter/internal/calculator"
)

func TestMermaid(t *testing.T) {
	tests := []struct {
		name     string
		payments []calculator.Payment
		want     string
	}{
		{
			name: "no payments",
			want: "flowchart LR\n",
		},
		{
			name: "peer payments only",
			payments: []calculator.Payment{
				{From: "person-2", To: "person-1", Amount: 10},
				{From: "Mary Jane", To: "Peter  Parker", Amount: 3.456},
			},
			want: "flowchart LR\n" +
				"    person-2(\"person-2\") -->|10.00| person-1(\"person-1\")\n" +
				"    Mary_Jane(\"Mary Jane\") -->|3.46| Peter_Parker(\"Peter  Parker\")\n",
		},
		{
			name: "pool payments are drawn separately",
			payments: []calculator.Payment{
				{From: calculator.OverpaymentPool, To: "Bob", Amount: 5},
				{From: "Charlie", To: "Alice", Amount: 10},
			},
			want: "flowchart LR\n" +
				"    %% Regular person-to-person transactions\n" +
				"    Charlie(\"Charlie\") -->|10.00| Alice(\"Alice\")\n" +
				"\n    %% Overpayment Pool transactions (on the right)\n" +
				"    Bob(\"Bob\") <--5.00 --> Pool((\"💰\nOverpayment\nPool\"))\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Mermaid(tt.payments))
		})
	}
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "0.00", FormatAmount(0))
	assert.Equal(t, "12.50", FormatAmount(12.5))
	assert.Equal(t, "430.42", FormatAmount(430.41666666))
	assert.Equal(t, "-3.00", FormatAmount(-3))
	assert.Equal(t, "1.00", FormatAmount(1.005))
	assert.Equal(t, "2.67", FormatAmount(2.675))
	assert.Equal(t, "0.13", FormatAmount(0.125))
	assert.Equal(t, "-0.13", FormatAmount(-0.125))
}
