package legal

// privacyTemplate renders the privacy policy. Conditional sections are
// gated on config booleans: a section appears iff its flag is true.
const privacyTemplate = `# Privacy Policy for {{.Application.Name}}

**Effective date:** {{.Application.EffectiveDate}}

This Privacy Policy describes how {{.Company.DisplayName}} ("we", "us")
collects, uses, and protects information when you use
{{.Application.Name}}{{if .Application.URL}} at {{.Application.URL}}{{end}}.

## Information We Collect
{{if .DataCollection.Any}}
We collect the following categories of information:
{{if .DataCollection.Email}}
- **Email address** — used for account identification and essential communication.
{{- end}}
{{- if .DataCollection.Name}}
- **Name** — used to personalize your account.
{{- end}}
{{- if .DataCollection.UsageAnalytics}}
- **Usage analytics** — anonymized interaction data that helps us improve the product.
{{- end}}
{{- if .DataCollection.CrashReports}}
- **Crash reports** — diagnostic data sent when the application encounters an error.
{{- end}}
{{- if .DataCollection.Cookies}}
- **Cookies** — small files stored in your browser to keep you signed in and remember preferences.
{{- end}}
{{- if .DataCollection.PaymentInfo}}
- **Payment information** — processed by our payment provider; we do not store card numbers.
{{- end}}
{{- if .DataCollection.Location}}
- **Location data** — approximate location used to provide region-specific functionality.
{{- end}}
{{else}}
We do not collect personal information.
{{end}}
## How We Use Information
{{if .DataUsage.Purposes}}
We use collected information to:
{{range .DataUsage.Purposes}}
- {{.}}
{{- end}}
{{else}}
We use collected information only to operate and maintain the service.
{{end}}
{{if .DataUsage.ThirdPartySharing}}## Third-Party Sharing

We share limited information with the following third parties, solely
to operate the service:
{{if .DataUsage.ThirdParties}}
{{- range .DataUsage.ThirdParties}}
- {{.}}
{{- end}}
{{else}}
- Service providers acting on our behalf under contractual confidentiality.
{{end}}
We do not sell your personal information.

{{end}}{{if gt .DataUsage.RetentionMonths 0}}## Data Retention

We retain personal information for up to {{.DataUsage.RetentionMonths}}
months after your last activity, after which it is deleted or
anonymized.

{{end}}{{if .HasUserRights}}## Your Rights

You may exercise the following rights by contacting us at
{{.Company.Email}}:
{{if .UserRights.Access}}
- **Access** — request a copy of the personal information we hold about you.
{{- end}}
{{- if .UserRights.Deletion}}
- **Deletion** — request that we delete your personal information.
{{- end}}
{{- if .UserRights.Portability}}
- **Portability** — receive your information in a structured, machine-readable format.
{{- end}}
{{- if .UserRights.OptOut}}
- **Opt-out** — opt out of non-essential data processing.
{{- end}}

{{end}}{{if .Compliance.GDPR}}## GDPR (European Users)

If you are located in the European Economic Area, you have rights under
the General Data Protection Regulation, including access, rectification,
erasure, restriction of processing, and data portability. Our lawful
bases for processing are contract performance and legitimate interest.
You may lodge a complaint with your local supervisory authority.

{{end}}{{if .Compliance.CCPA}}## CCPA (California Users)

If you are a California resident, the California Consumer Privacy Act
gives you the right to know what personal information we collect, to
request deletion, and to opt out of the sale of personal information.
We do not sell personal information as defined by the CCPA.

{{end}}{{if .Compliance.COPPA}}## Children's Privacy (COPPA)

{{.Application.Name}} is not directed at children under 13, and we do
not knowingly collect personal information from children under 13. If
you believe a child has provided us personal information, contact us at
{{.Company.Email}} and we will delete it.

{{end}}{{if .Compliance.HIPAA}}## Health Information (HIPAA)

Where {{.Application.Name}} processes protected health information, we
do so in accordance with the Health Insurance Portability and
Accountability Act and execute Business Associate Agreements with
covered entities as required.

{{end}}## Contact Us

Questions about this policy may be sent to {{.Company.Email}}{{if .Company.Address}} or:

{{.Company.DisplayName}}
{{.Company.Address}}{{end}}
`

// termsTemplate renders the terms of service.
const termsTemplate = `# Terms of Service for {{.Application.Name}}

**Effective date:** {{.Application.EffectiveDate}}

These Terms of Service ("Terms") govern your use of
{{.Application.Name}}{{if .Application.URL}} at {{.Application.URL}}{{end}},
operated by {{.Company.DisplayName}} ("we", "us").

## Acceptance of Terms

By accessing or using {{.Application.Name}}, you agree to be bound by
these Terms. If you do not agree, do not use the service.

## Use of the Service

You agree to use {{.Application.Name}} only for lawful purposes and in
accordance with these Terms. You must not:

- Interfere with or disrupt the service or its infrastructure.
- Attempt to gain unauthorized access to any part of the service.
- Use the service to transmit unlawful, harmful, or infringing content.
{{if .DataCollection.PaymentInfo}}
## Payments

Paid features are billed through our payment provider. Fees are stated
before purchase and are non-refundable except where required by law.
{{end}}
## Intellectual Property

The service and its original content are and remain the property of
{{.Company.DisplayName}}. Nothing in these Terms grants you a right to
use our trademarks or branding.
{{if .Compliance.COPPA}}
## Eligibility

You must be at least 13 years old to use {{.Application.Name}}. By
using the service you represent that you meet this requirement.
{{end}}
## Termination

We may suspend or terminate your access at any time for conduct that
violates these Terms or is otherwise harmful to the service or other
users.{{if .UserRights.Deletion}} You may delete your account at any time by contacting
{{.Company.Email}}.{{end}}

## Disclaimer and Limitation of Liability

The service is provided "as is" without warranty of any kind. To the
maximum extent permitted by law, {{.Company.DisplayName}} shall not be
liable for indirect, incidental, or consequential damages arising from
your use of the service.
{{if .Company.Jurisdiction}}
## Governing Law

These Terms are governed by the laws of {{.Company.Jurisdiction}},
without regard to conflict-of-law principles.
{{end}}
## Changes to These Terms

We may update these Terms from time to time. Material changes take
effect on the stated effective date of the revised Terms.

## Contact Us

Questions about these Terms may be sent to {{.Company.Email}}.
`
