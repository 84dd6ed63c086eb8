package notification

import "text/template"

const noNotes = "No additional notes provided."

var studioTemplate = template.Must(template.New("studio").Parse(`New reservation request

Client: {{.CustomerName}} <{{.CustomerEmail}}>
Vehicle: {{.VehicleDescription}}
Services: {{.Services}}
Date: {{.ScheduledDate}}
Slot: {{.ScheduledSlot}}

Total: {{.Total}} {{.Currency}}
Deposit: {{.Deposit}} {{.Currency}}
Balance due: {{.Balance}} {{.Currency}}

Notes: {{.Notes}}
`))

var customerTemplate = template.Must(template.New("customer").Parse(`Dear {{.CustomerName}},

Your reservation for {{.VehicleDescription}} is registered.

Services: {{.Services}}
Date: {{.ScheduledDate}}
Slot: {{.ScheduledSlot}}

Total: {{.Total}} {{.Currency}}
Deposit: {{.Deposit}} {{.Currency}}
Remaining balance, due after the service: {{.Balance}} {{.Currency}}

See you at the studio.
`))
