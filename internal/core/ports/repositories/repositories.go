package repositories

// RepositoryProvider bundles the concrete repositories handed to the service
// container at wiring time.
type RepositoryProvider struct {
	PayrollRepo   PayrollRepositoryFacade
	PaymentRepo   PaymentRecordReader
	RecipientRepo RecipientRepositoryFacade
	ScheduleRepo  ScheduleRepositoryFacade
	LeaseRepo     LeaseRepositoryFacade
	AlertRepo     AlertRepositoryFacade
}
