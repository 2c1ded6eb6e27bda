package ui

import "fstruct/internal/services"

type createResultMsg struct {
	request services.CreateRequest
	result  services.CreateResult
	err     error
}
