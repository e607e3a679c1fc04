package model

import "fmt"

// Framework identifies the web framework a template targets.
type Framework string

const (
	// FrameworkNextJS is Next.js (app router).
	FrameworkNextJS Framework = "nextjs"
	// FrameworkExpress is Express.
	FrameworkExpress Framework = "express"
	// FrameworkReact is a client-only React project.
	FrameworkReact Framework = "react"
	// FrameworkFastify is Fastify.
	FrameworkFastify Framework = "fastify"
	// FrameworkHono is Hono.
	FrameworkHono Framework = "hono"
	// FrameworkNestJS is NestJS.
	FrameworkNestJS Framework = "nestjs"
)

// Provider identifies the payment provider a template integrates with.
type Provider string

const (
	// ProviderDodoPayments is Dodo Payments.
	ProviderDodoPayments Provider = "dodopayments"
	// ProviderStripe is Stripe.
	ProviderStripe Provider = "stripe"
	// ProviderPayPal is PayPal.
	ProviderPayPal Provider = "paypal"
)

// Frameworks returns every known framework in display order.
func Frameworks() []Framework {
	return []Framework{
		FrameworkNextJS,
		FrameworkExpress,
		FrameworkReact,
		FrameworkFastify,
		FrameworkHono,
		FrameworkNestJS,
	}
}

// Providers returns every known provider in display order.
func Providers() []Provider {
	return []Provider{
		ProviderDodoPayments,
		ProviderStripe,
		ProviderPayPal,
	}
}

// Valid reports whether f is one of the known frameworks.
func (f Framework) Valid() bool {
	switch f {
	case FrameworkNextJS, FrameworkExpress, FrameworkReact,
		FrameworkFastify, FrameworkHono, FrameworkNestJS:
		return true
	default:
		return false
	}
}

// Label returns the human readable framework name.
func (f Framework) Label() string {
	switch f {
	case FrameworkNextJS:
		return "Next.js"
	case FrameworkExpress:
		return "Express.js"
	case FrameworkReact:
		return "React"
	case FrameworkFastify:
		return "Fastify"
	case FrameworkHono:
		return "Hono"
	case FrameworkNestJS:
		return "NestJS"
	default:
		return string(f)
	}
}

// Valid reports whether p is one of the known providers.
func (p Provider) Valid() bool {
	switch p {
	case ProviderDodoPayments, ProviderStripe, ProviderPayPal:
		return true
	default:
		return false
	}
}

// Label returns the human readable provider name.
func (p Provider) Label() string {
	switch p {
	case ProviderDodoPayments:
		return "Dodo Payments"
	case ProviderStripe:
		return "Stripe"
	case ProviderPayPal:
		return "PayPal"
	default:
		return string(p)
	}
}

// ParseFramework converts a string into a Framework.
func ParseFramework(s string) (Framework, error) {
	f := Framework(s)
	if !f.Valid() {
		return "", fmt.Errorf("unknown framework %q", s)
	}
	return f, nil
}

// ParseProvider converts a string into a Provider.
func ParseProvider(s string) (Provider, error) {
	p := Provider(s)
	if !p.Valid() {
		return "", fmt.Errorf("unknown provider %q", s)
	}
	return p, nil
}

// FileKind classifies a template file entry.
type FileKind string

const (
	// FileKindTemplate is application source (route handlers, components).
	FileKindTemplate FileKind = "template"
	// FileKindConfig is a configuration file such as .env.example.
	FileKindConfig FileKind = "config"
	// FileKindTypes is a type declaration file.
	FileKindTypes FileKind = "types"
)
