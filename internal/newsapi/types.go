package newsapi

// Params selects one page of headlines.
type Params struct {
	Category string
	Query    string
	Page     int
	PageSize int
	Country  string
}

// Response mirrors the top-headlines JSON body. Code and Message are only
// present when Status is "error".
type Response struct {
	Status       string   `json:"status"`
	TotalResults int      `json:"totalResults"`
	Articles     []Record `json:"articles"`
	Code         string   `json:"code,omitempty"`
	Message      string   `json:"message,omitempty"`
}

// Record is a raw article as returned by the API. Any string field may be
// null, which decodes to "". PublishedAt is kept raw and parsed per record
// by the caller.
type Record struct {
	Source struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	} `json:"source"`
	Author      string `json:"author"`
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
	URLToImage  string `json:"urlToImage"`
	PublishedAt string `json:"publishedAt"`
	Content     string `json:"content"`
}

const (
	StatusOK    = "ok"
	StatusError = "error"
)
