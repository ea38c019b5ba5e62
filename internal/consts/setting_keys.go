package consts

const (

	// ConfigSiteName village site name
	ConfigSiteName = "site_name"

	// ConfigSiteDescription short tagline shown on the public pages
	ConfigSiteDescription = "site_description"

	// ConfigVillageHead name of the current village head
	ConfigVillageHead = "village_head"

	// ConfigContactAddress office address
	ConfigContactAddress = "contact_address"

	// ConfigContactPhone office phone number
	ConfigContactPhone = "contact_phone"

	// ConfigContactEmail office email address
	ConfigContactEmail = "contact_email"

	// ConfigOfficeHours office opening hours
	ConfigOfficeHours = "office_hours"

	// ConfigAutoActivateRegistrations activate newly registered admin accounts immediately (true/false)
	ConfigAutoActivateRegistrations = "auto_activate_registrations"

	// ConfigMaxUploadSize maximum raw upload size (MB)
	ConfigMaxUploadSize = "max_upload_size"

	// ConfigAllowFileExtensions allowed upload extensions (comma separated)
	ConfigAllowFileExtensions = "allow_file_extensions"

	// ConfigRateLimitEnabled enables IP rate limiting
	ConfigRateLimitEnabled = "rate_limit_enabled"

	// ConfigRateLimitAuthRPS auth endpoints requests per second
	ConfigRateLimitAuthRPS = "rate_limit_auth_rps"

	// ConfigRateLimitAuthBurst auth endpoints burst
	ConfigRateLimitAuthBurst = "rate_limit_auth_burst"

	// ConfigMaxRequestBodySize maximum non-upload request body (MB)
	ConfigMaxRequestBodySize = "max_request_body_size"

	// ConfigStaticCacheControl Cache-Control header for served blobs
	ConfigStaticCacheControl = "static_cache_control"
)
