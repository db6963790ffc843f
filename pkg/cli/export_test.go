package cli

var LoadEnvFileForTest = loadEnvFile
