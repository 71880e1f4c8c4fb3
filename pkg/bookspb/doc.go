// Package bookspb holds the generated wire contract of the books.BookService
// gRPC API. Regenerate after editing books.proto.
package bookspb

//go:generate protoc --go_out=. --go_opt=paths=source_relative --go-grpc_out=. --go-grpc_opt=paths=source_relative books.proto
