// Package transitcatalogue ties the catalogue, router, renderer and responder
// together into a dataset pipeline: decode an input document, load its base
// requests into a Catalogue, build the Router and Renderer it needs, and
// answer its stat requests.
//
// A Dataset is immutable once Process returns. Responses can then be written
// in batch (WriteJSON, WriteText) or served over HTTP through the server
// package.
package transitcatalogue
