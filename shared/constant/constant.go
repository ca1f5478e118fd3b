package constant

const (
	RequestParamGalleryID = "galleryId"
	RequestParamObjectID  = "objectId"
	RequestMaxMemory      = 10 << 20 // 10 MB
)

const (
	HarvardPathGallery = "/gallery"
	HarvardPathObject  = "/object"

	HarvardParamAPIKey  = "apikey"
	HarvardParamSize    = "size"
	HarvardParamGallery = "gallery"

	HarvardFieldRecords         = "records"
	HarvardFieldPrimaryImageURL = "primaryimageurl"
	HarvardFieldPeople          = "people"
	HarvardFieldName            = "name"
	HarvardFieldID              = "id"
	HarvardFieldTitle           = "title"
	HarvardFieldURL             = "url"
)

const (
	ThumbnailQuery = "?height=150&width=150"
	NoImage        = "No image"
	PeopleSentinel = " "
	PeopleSep      = ", "
)

const (
	ViewIndex   = "index"
	ViewGallery = "gallery"
	ViewObject  = "object"
)

const (
	OtelServiceScopeName    = "service"
	OtelRepositoryScopeName = "repository"
	OtelHandlerScopeName    = "handler"
	OtelExternalScopeName   = "external"

	OtelQueryAttributeKey = "query"
	OtelURLAttributeKey   = "http.url"
)

const (
	RequestHeaderUserAgent          = "User-Agent"
	RequestHeaderContentType        = "Content-Type"
	RequestHeaderAccept             = "Accept"
	RequestHeaderRateLimit          = "X-RateLimit-Limit"
	RequestHeaderRateLimitRemaining = "X-RateLimit-Remaining"
	RequestHeaderRateLimitWindow    = "X-RateLimit-Window"
	RequestHeaderForwardedFor       = "X-Forwarded-For"
	RequestHeaderRealIP             = "X-Real-IP"
)

const (
	ContentTypeJSON              = "application/json"
	ContentTypeHTML              = "text/html; charset=utf-8"
	ContentTypeMultipartFormData = "multipart/form-data"
)

const (
	ResponseErrorPrepareShutdown      = "SERVER PREPARING TO SHUT DOWN"
	ResponseErrorRequestLimitExceeded = "REQUEST LIMIT EXCEEDED"
)

const (
	ServerEnvDevelopment = "development"
	ServerEnvProduction  = "production"
)

const (
	Empty = ""
)
