package browser

var ReleaseConnection = releaseConnection
