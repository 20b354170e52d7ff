package config

type (
	DriverConfig struct {
		MongoDB MongoDB
		Redis   Redis
		Logger  Logger
	}

	InternalConfig struct {
		App    App
		Gemini Gemini
	}

	App struct {
		Env                     string
		Port                    string
		Version                 string
		Address                 string
		Timezone                string
		EndpointPrefix          string
		MaxRequests             int
		ShutdownTimeout         int
		RequestTimeoutInSeconds int
	}

	MongoDB struct {
		Port     string
		Host     string
		DbName   string
		Username string
		Password string
	}

	Redis struct {
		Enabled  bool
		Host     string
		Port     string
		Password string
	}

	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}

	Gemini struct {
		BaseUrl                  string
		Model                    string
		APIKey                   string
		RequestTimeoutInSeconds  int
		SummaryCacheTTLInMinutes int
	}
)
