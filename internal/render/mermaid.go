// Package render turns settlement results into presentation formats: a
// Mermaid flowchart of the payments and the per-person split table.
package render

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/mmynk/moneysplitter/internal/calculator"
)

var whitespace = regexp.MustCompile(`\s+`)

// poolNode is the dedicated node every pool edge points at.
const poolNode = "Pool((\"💰\nOverpayment\nPool\"))"

// Mermaid renders payments as a left-to-right flowchart.
//
// Peer payments are drawn as payer -->|amount| receiver. Payments from the
// overpayment pool are listed after them with a reversed arrow into a single
// Pool node.
func Mermaid(payments []calculator.Payment) string {
	var sb strings.Builder
	sb.WriteString("flowchart LR\n")

	var regular, pool []calculator.Payment
	for _, p := range payments {
		if p.From == calculator.OverpaymentPool {
			pool = append(pool, p)
		} else {
			regular = append(regular, p)
		}
	}

	if len(pool) == 0 {
		for _, p := range regular {
			writeEdge(&sb, p)
		}
		return sb.String()
	}

	sb.WriteString("    %% Regular person-to-person transactions\n")
	for _, p := range regular {
		writeEdge(&sb, p)
	}

	sb.WriteString("\n    %% Overpayment Pool transactions (on the right)\n")
	for _, p := range pool {
		fmt.Fprintf(&sb, "    %s(\"%s\") <--%s --> %s\n", nodeID(p.To), p.To, FormatAmount(p.Amount), poolNode)
	}
	return sb.String()
}

func writeEdge(sb *strings.Builder, p calculator.Payment) {
	fmt.Fprintf(sb, "    %s(\"%s\") -->|%s| %s(\"%s\")\n",
		nodeID(p.From), p.From, FormatAmount(p.Amount), nodeID(p.To), p.To)
}

// nodeID replaces whitespace runs so a name can be used as a node id.
func nodeID(name string) string {
	return whitespace.ReplaceAllString(name, "_")
}

// FormatAmount formats a money value with exactly two decimals, rounding the
// exact binary value half away from zero: 1.005 is stored just below and
// prints as 1.00.
func FormatAmount(amount float64) string {
	return decimal.NewFromFloatWithExponent(amount, -2).StringFixed(2)
}
