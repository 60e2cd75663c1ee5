package cmd

type Config struct {
	HTTPPort             string
	DBHost               string
	DBPort               string
	DBUser               string
	DBPassword           string
	DBName               string
	DBSslMode            string
	MinioEndpoint        string
	MinioAccessKey       string
	MinioSecretKey       string
	MinioBucket          string
	MinioUseSSL          bool
	WhatsAppAPIURL       string
	WhatsAppPhoneID      string
	WhatsAppAccessToken  string
	TrackingAPIURL       string
	TrackingAPIKey       string
	TrackingSyncSchedule string
}
