package legal

// SampleConfigJSON is a starter legal configuration written by
// `agentctl init --with-legal`. Every field is present so the file
// doubles as documentation of the schema.
const SampleConfigJSON = `{
  "company": {
    "name": "Your Company, Inc.",
    "legal_name": "",
    "email": "legal@example.com",
    "address": "",
    "jurisdiction": ""
  },
  "application": {
    "name": "Your App",
    "url": "https://app.example.com",
    "platforms": ["web"],
    "effective_date": "2026-01-01"
  },
  "data_collection": {
    "email": true,
    "name": true,
    "usage_analytics": false,
    "crash_reports": false,
    "cookies": true,
    "payment_info": false,
    "location": false
  },
  "data_usage": {
    "purposes": ["account management", "customer support"],
    "third_party_sharing": false,
    "third_parties": [],
    "retention_months": 24
  },
  "user_rights": {
    "access": true,
    "deletion": true,
    "portability": false,
    "opt_out": true
  },
  "compliance": {
    "gdpr": false,
    "ccpa": false,
    "coppa": false,
    "hipaa": false
  }
}
`
