// Package di is the small, explicit dependency injection helper behind the
// Dependency Inversion demo.
//
// A Service[T] wraps a constructed value together with a bag of the
// dependencies that were wired into it. Injecting builds the Injector that
// binds an abstraction into the target and records it under a
// DependencyKey; Lookup and Has read the bag back.
//
// There is no container and no reflection-based injection. The composition
// root decides which concrete implementation backs each abstraction:
//
//	var f dip.DataFetcher = dip.FirebaseFetcher{}
//	fetcher := di.Init(func() *dip.DataFetcher { return &f })
//	syncer, err := di.Init(dip.NewSyncer).
//		With(di.Injecting(dip.KeyFetcher, fetcher, dip.BindFetcher))
package di
