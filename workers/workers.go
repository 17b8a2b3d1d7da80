package workers

// set by the HTTP worker on shutdown; poll loops check it between iterations
var WorkerShutdown bool
