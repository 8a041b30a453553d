// Package domain contains the core domain entities and types used by the
// application. These types represent the business concepts (colaboradores,
// payslip files, e-mail notifications and the payslip processing requests)
// and are intentionally free of infrastructure concerns so they can be shared
// across the service, its storage layer and the CLI client.
package domain
