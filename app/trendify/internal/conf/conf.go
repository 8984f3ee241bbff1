package conf

type Bootstrap struct {
	Server   *Server   `json:"server"`
	Trendify *Trendify `json:"trendify"`
}

type Server struct {
	Http *HTTP `json:"http"`
}

type HTTP struct {
	Addr    string `json:"addr"`
	Timeout string `json:"timeout"`
}

type Trendify struct {
	Llm    *LLM    `json:"llm"`
	Trend  *Trend  `json:"trend"`
	Log    *Log    `json:"log"`
	Export *Export `json:"export"`
}

type LLM struct {
	Provider      string   `json:"provider"`
	BaseUrl       string   `json:"base_url"`
	ApiKey        string   `json:"api_key"`
	Model         string   `json:"model"`
	Temperature   *float32 `json:"temperature"`
	MaxTokens     int32    `json:"max_tokens"`
	Rpm           int32    `json:"rpm"`
	Burst         int32    `json:"burst"`
	LenientRepair bool     `json:"lenient_repair"`
}

type Trend struct {
	Provider string `json:"provider"`
	BaseUrl  string `json:"base_url"`
	Hl       string `json:"hl"`
	Tz       *int32 `json:"tz"`
	Timeout  int32  `json:"timeout"`
}

type Log struct {
	Level string `json:"level"`
	File  string `json:"file"`
}

type Export struct {
	Dir string `json:"dir"`
}
