// Package eventtypes is the catalog of event types. Each constant is the
// flat identifier listeners subscribe to; the table in catalog.go maps the
// namespace path (e.g. "Model.Project.update") used for discovery onto it.
package eventtypes

import "github.com/arc-labs/arcevents/pkg/arcevents/v1/events"

// Navigation
const (
	Navigate         events.EventType = "arcnavigate"
	NavigateRequest  events.EventType = "arcnavigaterequest"
	NavigateProject  events.EventType = "arcnavigateproject"
	NavigateRestAPI  events.EventType = "arcnavigaterestapi"
	NavigateExternal events.EventType = "arcnavigateexternal"
	NavigateHelp     events.EventType = "arcnavigatehelptopic"
)

// Authorization
const (
	OAuth2Authorize   events.EventType = "oauth2authorize"
	OAuth2RemoveToken events.EventType = "oauth2removetoken"
	OidcAuthorize     events.EventType = "oidcauthorize"
	OidcRemoveTokens  events.EventType = "oidcremovetokens"
	OidcTokensReady   events.EventType = "oidctokensready"
)

// Application configuration
const (
	ConfigReadAll     events.EventType = "configreadall"
	ConfigUpdate      events.EventType = "configupdate"
	ConfigStateUpdate events.EventType = "configstateupdate"
)

// Session cookies
const (
	CookieListAll     events.EventType = "sessioncookielistall"
	CookieListDomain  events.EventType = "sessioncookielistdomain"
	CookieListURL     events.EventType = "sessioncookielisturl"
	CookieUpdate      events.EventType = "sessioncookieupdate"
	CookieUpdateBulk  events.EventType = "sessioncookieupdatebulk"
	CookieDelete      events.EventType = "sessioncookiedelete"
	CookieDeleteURL   events.EventType = "sessioncookiedeleteurl"
	CookieStateUpdate events.EventType = "sessioncookiestateupdate"
	CookieStateDelete events.EventType = "sessioncookiestatedelete"
)

// Data export, import and cloud storage
const (
	ExportCustomData      events.EventType = "arcexportcustomdata"
	ExportNativeData      events.EventType = "arcexportnativedata"
	ExportFileSave        events.EventType = "arcexportfilesave"
	ExportGoogleDriveSave events.EventType = "arcexportgoogledrivesave"

	ImportProcessFile  events.EventType = "arcdataimportprocessfile"
	ImportProcessData  events.EventType = "arcdataimportprocessdata"
	ImportNormalize    events.EventType = "arcdataimportnormalize"
	ImportDataImported events.EventType = "arcdataimportdataimported"

	GoogleDriveRead           events.EventType = "googledriveread"
	GoogleDriveListAppFolders events.EventType = "googledrivelistappfolders"
	GoogleDriveSave           events.EventType = "googledrivesave"

	EncryptionEncrypt events.EventType = "arcencryptionencrypt"
	EncryptionDecrypt events.EventType = "arcencryptiondecrypt"
)

// Data store: generic
const (
	ModelDestroy   events.EventType = "modeldestroy"
	ModelDestroyed events.EventType = "modeldestroyed"
)

// Data store: projects
const (
	ProjectRead        events.EventType = "modelprojectread"
	ProjectUpdate      events.EventType = "modelprojectchange"
	ProjectUpdateBulk  events.EventType = "modelprojectupdatebulk"
	ProjectDelete      events.EventType = "modelprojectdelete"
	ProjectList        events.EventType = "modelprojectlist"
	ProjectListAll     events.EventType = "modelprojectlistall"
	ProjectStateUpdate events.EventType = "modelstateprojectchange"
	ProjectStateDelete events.EventType = "modelstateprojectdelete"
)

// Data store: saved and history requests
const (
	RequestRead         events.EventType = "modelrequestread"
	RequestReadBulk     events.EventType = "modelrequestreadbulk"
	RequestUpdate       events.EventType = "modelrequestchange"
	RequestUpdateBulk   events.EventType = "modelrequestupdatebulk"
	RequestDelete       events.EventType = "modelrequestdelete"
	RequestDeleteBulk   events.EventType = "modelrequestdeletebulk"
	RequestUndeleteBulk events.EventType = "modelrequestundeletebulk"
	RequestList         events.EventType = "modelrequestlist"
	RequestQuery        events.EventType = "modelrequestquery"
	RequestStateUpdate  events.EventType = "modelstaterequestchange"
	RequestStateDelete  events.EventType = "modelstaterequestdelete"
)

// Data store: URL history
const (
	URLHistoryList        events.EventType = "modelurlhistorylist"
	URLHistoryInsert      events.EventType = "modelurlhistoryinsert"
	URLHistoryQuery       events.EventType = "modelurlhistoryquery"
	URLHistoryDelete      events.EventType = "modelurlhistorydelete"
	URLHistoryClear       events.EventType = "modelurlhistoryclear"
	URLHistoryStateUpdate events.EventType = "modelstateurlhistorychange"
	URLHistoryStateDelete events.EventType = "modelstateurlhistorydelete"
)

// Data store: environments and variables
const (
	EnvironmentRead        events.EventType = "modelenvironmentread"
	EnvironmentUpdate      events.EventType = "modelenvironmentchange"
	EnvironmentDelete      events.EventType = "modelenvironmentdelete"
	EnvironmentList        events.EventType = "modelenvironmentlist"
	EnvironmentCurrent     events.EventType = "modelenvironmentcurrent"
	EnvironmentSelect      events.EventType = "modelenvironmentselect"
	EnvironmentStateUpdate events.EventType = "modelstateenvironmentchange"
	EnvironmentStateDelete events.EventType = "modelstateenvironmentdelete"
	EnvironmentStateSelect events.EventType = "modelstateenvironmentselect"

	VariableUpdate      events.EventType = "modelvariablechange"
	VariableDelete      events.EventType = "modelvariabledelete"
	VariableList        events.EventType = "modelvariablelist"
	VariableSet         events.EventType = "modelvariableset"
	VariableStateUpdate events.EventType = "modelstatevariablechange"
	VariableStateDelete events.EventType = "modelstatevariabledelete"
)

// Data store: host rules
const (
	HostRulesUpdate      events.EventType = "modelhostrulechange"
	HostRulesUpdateBulk  events.EventType = "modelhostrulesupdatebulk"
	HostRulesDelete      events.EventType = "modelhostruledelete"
	HostRulesList        events.EventType = "modelhostruleslist"
	HostRulesClear       events.EventType = "modelhostrulesclear"
	HostRulesStateUpdate events.EventType = "modelstatehostrulechange"
	HostRulesStateDelete events.EventType = "modelstatehostruledelete"
)

// Data store: client certificates
const (
	CertificateRead        events.EventType = "modelclientcertificateread"
	CertificateList        events.EventType = "modelclientcertificatelist"
	CertificateDelete      events.EventType = "modelclientcertificatedelete"
	CertificateInsert      events.EventType = "modelclientcertificateinsert"
	CertificateStateUpdate events.EventType = "modelstateclientcertificatechange"
	CertificateStateDelete events.EventType = "modelstateclientcertificatedelete"
)

// Data store: REST API index
const (
	RestAPIList               events.EventType = "modelrestapilist"
	RestAPIRead               events.EventType = "modelrestapiread"
	RestAPIUpdate             events.EventType = "modelrestapichange"
	RestAPIUpdateBulk         events.EventType = "modelrestapiupdatebulk"
	RestAPIDelete             events.EventType = "modelrestapidelete"
	RestAPIDataRead           events.EventType = "modelrestapidataread"
	RestAPIDataUpdate         events.EventType = "modelrestapidatachange"
	RestAPIVersionRead        events.EventType = "modelrestapiversionread"
	RestAPIVersionDelete      events.EventType = "modelrestapiversiondelete"
	RestAPIProcessFile        events.EventType = "modelrestapiprocessfile"
	RestAPIStateUpdate        events.EventType = "modelstaterestapichange"
	RestAPIStateDelete        events.EventType = "modelstaterestapidelete"
	RestAPIStateVersionDelete events.EventType = "modelstaterestapiversiondelete"
)

// Data store: authorization data and URL indexer
const (
	AuthDataQuery       events.EventType = "modelauthdataquery"
	AuthDataUpdate      events.EventType = "modelauthdataupdate"
	AuthDataStateUpdate events.EventType = "modelstateauthdataupdate"

	URLIndexerUpdate events.EventType = "modelurlindexerupdate"
	URLIndexerQuery  events.EventType = "modelurlindexerquery"
)

// HTTP transport
const (
	TransportRequest   events.EventType = "transportrequest"
	TransportTransport events.EventType = "transportcoretransport"
	TransportResponse  events.EventType = "transportresponse"
	TransportAbort     events.EventType = "transportabort"
)

// Request editor
const (
	RequestSend                   events.EventType = "arcrequestsend"
	RequestAbort                  events.EventType = "arcrequestabort"
	RequestStateURLChange         events.EventType = "arcrequeststateurlchange"
	RequestStateContentTypeChange events.EventType = "arcrequeststatecontenttypechange"
)

// Background processes
const (
	ProcessLoadingStart events.EventType = "processloadingstart"
	ProcessLoadingStop  events.EventType = "processloadingstop"
	ProcessLoadingError events.EventType = "processloadingerror"
)

// Error reporting
const (
	ReportingError events.EventType = "arcreportingerror"
)

// Telemetry
const (
	TelemetryView      events.EventType = "telemetryscreenview"
	TelemetryEvent     events.EventType = "telemetryevent"
	TelemetryException events.EventType = "telemetryexception"
	TelemetrySocial    events.EventType = "telemetrysocial"
	TelemetryTiming    events.EventType = "telemetrytiming"
)

// Workspace
const (
	WorkspaceRead          events.EventType = "workspaceread"
	WorkspaceWrite         events.EventType = "workspacewrite"
	WorkspaceAppendRequest events.EventType = "workspaceappendrequest"
	WorkspaceAppendExport  events.EventType = "workspaceappendexport"
)
