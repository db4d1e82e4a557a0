// Package docs provides generated OpenAPI documentation.
//
// PDF Toolbox API
//
//	@title			PDF Toolbox API
//	@version		1.0
//	@description	Merge, delete pages, and extract pages from PDFs.
//	@termsOfService	http://swagger.io/terms/
//
//	@contact.name	API Support
//	@contact.url	https://github.com/pdftoolbox/pdftoolbox
//
//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT
//
//	@host		localhost:8080
//	@BasePath	/
//
//	@schemes	http https
package docs

//go:generate swag init -g ../cmd/pdftoolbox/serve.go -o ./swagger --parseDependency --parseInternal
