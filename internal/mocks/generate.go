package mocks

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name FPLSource --dir ../usecase --output usecase --outpkg usecasemock --filename fpl_source_mock.go
