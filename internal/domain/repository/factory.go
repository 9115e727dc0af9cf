package repository

// Factory describes access to different domain repositories.
type Factory interface {
	Requests() InvoiceRequestRepository
	Registrations() RegistrationRepository
	Intents() PaymentIntentRepository
	Invoices() InvoiceRepository
	Notes() OrderNoteRepository
	Schedules() ScheduleRepository
	Users() UserRepository
}
