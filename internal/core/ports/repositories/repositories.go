// Package repositories declares the persistence ports of the application.
// The store is key-value shaped: three named slots (committed transactions,
// committed investments, pending batch), each written atomically per call.
package repositories

// RepositoryContainer bundles the persistence ports that services depend on.
type RepositoryContainer struct {
	Transaction TransactionRepositoryFacade
	Investment  InvestmentRepositoryFacade
	Pending     PendingBatchRepository
	Staging     StagingCommitRepository
}
