package eventtypes

import (
	"strings"

	"github.com/arc-labs/arcevents/internal/registry"
	arcerrors "github.com/arc-labs/arcevents/pkg/arcevents/v1/errors"
	"github.com/arc-labs/arcevents/pkg/arcevents/v1/events"
)

// Entry pairs a namespace path with its event type.
type Entry = registry.Entry

var catalog = []Entry{
	{"Navigation.navigate", Navigate},
	{"Navigation.navigateRequest", NavigateRequest},
	{"Navigation.navigateProject", NavigateProject},
	{"Navigation.navigateRestApi", NavigateRestAPI},
	{"Navigation.navigateExternal", NavigateExternal},
	{"Navigation.helpTopic", NavigateHelp},

	{"Authorization.OAuth2.authorize", OAuth2Authorize},
	{"Authorization.OAuth2.removeToken", OAuth2RemoveToken},
	{"Authorization.Oidc.authorize", OidcAuthorize},
	{"Authorization.Oidc.removeTokens", OidcRemoveTokens},
	{"Authorization.Oidc.tokensReady", OidcTokensReady},

	{"Config.readAll", ConfigReadAll},
	{"Config.update", ConfigUpdate},
	{"Config.State.update", ConfigStateUpdate},

	{"Cookie.listAll", CookieListAll},
	{"Cookie.listDomain", CookieListDomain},
	{"Cookie.listUrl", CookieListURL},
	{"Cookie.update", CookieUpdate},
	{"Cookie.updateBulk", CookieUpdateBulk},
	{"Cookie.delete", CookieDelete},
	{"Cookie.deleteUrl", CookieDeleteURL},
	{"Cookie.State.update", CookieStateUpdate},
	{"Cookie.State.delete", CookieStateDelete},

	{"DataExport.customData", ExportCustomData},
	{"DataExport.nativeData", ExportNativeData},
	{"DataExport.fileSave", ExportFileSave},
	{"DataExport.googleDriveSave", ExportGoogleDriveSave},

	{"DataImport.processFile", ImportProcessFile},
	{"DataImport.processData", ImportProcessData},
	{"DataImport.normalize", ImportNormalize},
	{"DataImport.dataImported", ImportDataImported},

	{"GoogleDrive.read", GoogleDriveRead},
	{"GoogleDrive.listAppFolders", GoogleDriveListAppFolders},
	{"GoogleDrive.save", GoogleDriveSave},

	{"Encryption.encrypt", EncryptionEncrypt},
	{"Encryption.decrypt", EncryptionDecrypt},

	{"Model.destroy", ModelDestroy},
	{"Model.destroyed", ModelDestroyed},

	{"Model.Project.read", ProjectRead},
	{"Model.Project.update", ProjectUpdate},
	{"Model.Project.updateBulk", ProjectUpdateBulk},
	{"Model.Project.delete", ProjectDelete},
	{"Model.Project.list", ProjectList},
	{"Model.Project.listAll", ProjectListAll},
	{"Model.Project.State.update", ProjectStateUpdate},
	{"Model.Project.State.delete", ProjectStateDelete},

	{"Model.Request.read", RequestRead},
	{"Model.Request.readBulk", RequestReadBulk},
	{"Model.Request.update", RequestUpdate},
	{"Model.Request.updateBulk", RequestUpdateBulk},
	{"Model.Request.delete", RequestDelete},
	{"Model.Request.deleteBulk", RequestDeleteBulk},
	{"Model.Request.undeleteBulk", RequestUndeleteBulk},
	{"Model.Request.list", RequestList},
	{"Model.Request.query", RequestQuery},
	{"Model.Request.State.update", RequestStateUpdate},
	{"Model.Request.State.delete", RequestStateDelete},

	{"Model.UrlHistory.list", URLHistoryList},
	{"Model.UrlHistory.insert", URLHistoryInsert},
	{"Model.UrlHistory.query", URLHistoryQuery},
	{"Model.UrlHistory.delete", URLHistoryDelete},
	{"Model.UrlHistory.clear", URLHistoryClear},
	{"Model.UrlHistory.State.update", URLHistoryStateUpdate},
	{"Model.UrlHistory.State.delete", URLHistoryStateDelete},

	{"Model.Environment.read", EnvironmentRead},
	{"Model.Environment.update", EnvironmentUpdate},
	{"Model.Environment.delete", EnvironmentDelete},
	{"Model.Environment.list", EnvironmentList},
	{"Model.Environment.current", EnvironmentCurrent},
	{"Model.Environment.select", EnvironmentSelect},
	{"Model.Environment.State.update", EnvironmentStateUpdate},
	{"Model.Environment.State.delete", EnvironmentStateDelete},
	{"Model.Environment.State.select", EnvironmentStateSelect},

	{"Model.Variable.update", VariableUpdate},
	{"Model.Variable.delete", VariableDelete},
	{"Model.Variable.list", VariableList},
	{"Model.Variable.set", VariableSet},
	{"Model.Variable.State.update", VariableStateUpdate},
	{"Model.Variable.State.delete", VariableStateDelete},

	{"Model.HostRules.update", HostRulesUpdate},
	{"Model.HostRules.updateBulk", HostRulesUpdateBulk},
	{"Model.HostRules.delete", HostRulesDelete},
	{"Model.HostRules.list", HostRulesList},
	{"Model.HostRules.clear", HostRulesClear},
	{"Model.HostRules.State.update", HostRulesStateUpdate},
	{"Model.HostRules.State.delete", HostRulesStateDelete},

	{"Model.ClientCertificate.read", CertificateRead},
	{"Model.ClientCertificate.list", CertificateList},
	{"Model.ClientCertificate.delete", CertificateDelete},
	{"Model.ClientCertificate.insert", CertificateInsert},
	{"Model.ClientCertificate.State.update", CertificateStateUpdate},
	{"Model.ClientCertificate.State.delete", CertificateStateDelete},

	{"Model.RestApi.list", RestAPIList},
	{"Model.RestApi.read", RestAPIRead},
	{"Model.RestApi.update", RestAPIUpdate},
	{"Model.RestApi.updateBulk", RestAPIUpdateBulk},
	{"Model.RestApi.delete", RestAPIDelete},
	{"Model.RestApi.dataRead", RestAPIDataRead},
	{"Model.RestApi.dataUpdate", RestAPIDataUpdate},
	{"Model.RestApi.versionRead", RestAPIVersionRead},
	{"Model.RestApi.versionDelete", RestAPIVersionDelete},
	{"Model.RestApi.processFile", RestAPIProcessFile},
	{"Model.RestApi.State.update", RestAPIStateUpdate},
	{"Model.RestApi.State.delete", RestAPIStateDelete},
	{"Model.RestApi.State.versionDelete", RestAPIStateVersionDelete},

	{"Model.AuthData.query", AuthDataQuery},
	{"Model.AuthData.update", AuthDataUpdate},
	{"Model.AuthData.State.update", AuthDataStateUpdate},

	{"Model.UrlIndexer.update", URLIndexerUpdate},
	{"Model.UrlIndexer.query", URLIndexerQuery},

	{"Transport.request", TransportRequest},
	{"Transport.transport", TransportTransport},
	{"Transport.response", TransportResponse},
	{"Transport.abort", TransportAbort},

	{"Request.send", RequestSend},
	{"Request.abort", RequestAbort},
	{"Request.State.urlChange", RequestStateURLChange},
	{"Request.State.contentTypeChange", RequestStateContentTypeChange},

	{"Process.loadingStart", ProcessLoadingStart},
	{"Process.loadingStop", ProcessLoadingStop},
	{"Process.loadingError", ProcessLoadingError},

	{"Reporting.error", ReportingError},

	{"Telemetry.view", TelemetryView},
	{"Telemetry.event", TelemetryEvent},
	{"Telemetry.exception", TelemetryException},
	{"Telemetry.social", TelemetrySocial},
	{"Telemetry.timing", TelemetryTiming},

	{"Workspace.read", WorkspaceRead},
	{"Workspace.write", WorkspaceWrite},
	{"Workspace.appendRequest", WorkspaceAppendRequest},
	{"Workspace.appendExport", WorkspaceAppendExport},
}

func init() {
	for _, e := range catalog {
		registry.Register(e.Path, e.Type)
	}
}

// All returns every built-in entry sorted by path.
func All() []Entry {
	return registry.Default().List()
}

// Lookup returns the type registered for a namespace path.
func Lookup(path string) (events.EventType, error) {
	return registry.Default().Get(path)
}

// PathOf returns the namespace path of t.
func PathOf(t events.EventType) (string, bool) {
	return registry.Default().PathOf(t)
}

// Namespace returns the entries whose path is prefix or lies below it,
// e.g. "Model.Project". An unknown prefix yields a TypeNotFoundError.
func Namespace(prefix string) ([]Entry, error) {
	var out []Entry
	for _, e := range All() {
		if e.Path == prefix || strings.HasPrefix(e.Path, prefix+".") {
			out = append(out, e)
		}
	}
	if len(out) == 0 {
		return nil, arcerrors.NewTypeNotFoundError(prefix)
	}
	return out, nil
}

// EnsureUnique reports collisions among entries. See registry.CheckUnique.
func EnsureUnique(entries []Entry) error {
	return registry.CheckUnique(entries)
}
