package api

import (
	"github.com/avasilev/estate-doc-agent/internal/api/middleware"
	"github.com/avasilev/estate-doc-agent/internal/models"
	restfulspec "github.com/emicklei/go-restful-openapi/v2"
	"github.com/emicklei/go-restful/v3"
)

func RegisterRoutes(container *restful.Container, handler *Handler) {
	ws := new(restful.WebService)

	ws.
		Path("/api/v1").
		Consumes(restful.MIME_JSON).
		Produces(restful.MIME_JSON)

	ws.
		Route(ws.GET("/health").
			To(handler.Health).
			Doc("Health check").
			Metadata(restfulspec.KeyOpenAPITags, []string{"health"}).
			Writes(HealthResponse{}).
			Returns(200, "OK", HealthResponse{}))

	ws.
		Route(ws.POST("/documents/process").
			To(handler.ProcessDocument).
			Doc("Process a document through classification and compliance validation").
			Metadata(restfulspec.KeyOpenAPITags, []string{"documents"}).
			Reads(models.Document{}).
			Writes(models.ProcessingResult{}).
			Returns(200, "OK", models.ProcessingResult{}).
			Returns(400, "Bad Request", middleware.ErrorResponse{}).
			Returns(500, "Internal Server Error", middleware.ErrorResponse{}))

	ws.
		Route(ws.POST("/documents/process/batch").
			To(handler.ProcessBatch).
			Doc("Process a batch of documents and return aggregate counts").
			Metadata(restfulspec.KeyOpenAPITags, []string{"documents"}).
			Reads(BatchRequest{}).
			Writes(models.BatchSummary{}).
			Returns(200, "OK", models.BatchSummary{}).
			Returns(400, "Bad Request", middleware.ErrorResponse{}).
			Returns(500, "Internal Server Error", middleware.ErrorResponse{}))

	ws.
		Route(ws.POST("/documents/classify").
			To(handler.ClassifyDocument).
			Doc("Classify a document without running compliance validation").
			Metadata(restfulspec.KeyOpenAPITags, []string{"documents"}).
			Reads(models.Document{}).
			Writes(models.ClassificationResult{}).
			Returns(200, "OK", models.ClassificationResult{}).
			Returns(400, "Bad Request", middleware.ErrorResponse{}))

	ws.
		Route(ws.GET("/taxonomy").
			To(handler.GetTaxonomy).
			Doc("List supported document categories and their codes").
			Metadata(restfulspec.KeyOpenAPITags, []string{"taxonomy"}).
			Writes(TaxonomyResponse{}).
			Returns(200, "OK", TaxonomyResponse{}))

	ws.
		Route(ws.GET("/history").
			To(handler.GetHistory).
			Doc("Snapshot of the processing history").
			Metadata(restfulspec.KeyOpenAPITags, []string{"history"}).
			Writes(HistoryResponse{}).
			Returns(200, "OK", HistoryResponse{}))

	ws.
		Route(ws.DELETE("/history").
			To(handler.ResetHistory).
			Doc("Clear the processing history").
			Metadata(restfulspec.KeyOpenAPITags, []string{"history"}).
			Returns(204, "No Content", nil))

	container.Add(ws)
}
