package constants

const (
	RSOSampleApp = "rso-sample-app"

	QueryParamAccessToken       = "access_token"
	QueryParamAuthorizationCode = "code"
	QueryParamIDToken           = "id_token"
	QueryParamRedirectURI       = "redirect_uri"
	QueryParamResponseType      = "response_type"
	QueryParamScope             = "scope"
	QueryParamSession           = "session"

	GrantTypeAuthorizationCode = "authorization_code"

	HeaderRiotToken = "X-Riot-Token"

	PathLogin    = "/"
	PathShowData = "/show-data/"
)
