package presentation

import (
	"fmt"
	"strings"
)

// String lists generators and compact relators:
//
//	Generators:
//	   a,b
//	Relators:
//	   aaBcbbcAc
func (p *Presentation) String() string {
	var sb strings.Builder
	sb.WriteString("Generators:\n   ")
	sb.WriteString(strings.Join(p.Generators(), ","))
	sb.WriteString("\nRelators:")
	for _, r := range p.Relators(false) {
		sb.WriteString("\n   ")
		sb.WriteString(r)
	}

	return sb.String()
}

// nontrivialRelators renders relators in verbose form, skipping the identity.
func (p *Presentation) nontrivialRelators() []string {
	var out []string
	for _, r := range p.data.Relators {
		if r.IsIdentity() {
			continue
		}
		out = append(out, p.mustEncode(r, true))
	}

	return out
}

// GAPString returns a GAP expression evaluating to the finitely presented group.
func (p *Presentation) GAPString() string {
	gens := p.Generators()
	quoted := make([]string, len(gens))
	var assign strings.Builder
	for i, g := range gens {
		quoted[i] = `"` + g + `"`
		fmt.Fprintf(&assign, "%s := F.%d; ", g, i+1)
	}
	locals := "F"
	if len(gens) > 0 {
		locals += ", " + strings.Join(gens, ", ")
	}

	return fmt.Sprintf("CallFuncList(function() local %s; F := FreeGroup(%s); %sreturn F/[%s]; end,[])",
		locals, strings.Join(quoted, ", "), assign.String(), strings.Join(p.nontrivialRelators(), ", "))
}

// MagmaString returns a Magma group constructor for the presentation.
func (p *Presentation) MagmaString() string {
	return fmt.Sprintf("Group<%s|%s>",
		strings.Join(p.Generators(), ","), strings.Join(p.nontrivialRelators(), ","))
}

// Export renders the presentation for the named system (FormatGAP or FormatMagma).
func (p *Presentation) Export(format string) (string, error) {
	switch strings.ToLower(format) {
	case FormatGAP:
		return p.GAPString(), nil
	case FormatMagma:
		return p.MagmaString(), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}
