package util

import (
	"testing"

	"github.com/nafemage/OSProject2/internal/responses"
)

func TestCalculateAverage(t *testing.T) {
	details := []responses.ProcessResponse{
		{WaitingTime: 0, ResponseTime: 0, TurnAroundTime: 5},
		{WaitingTime: 3, ResponseTime: 1, TurnAroundTime: 6},
		{WaitingTime: 6, ResponseTime: 2, TurnAroundTime: 10},
	}

	waiting, response, turnAround := CalculateAverage(details)

	if waiting != 3 {
		t.Errorf("Expected average waiting 3, got %f", waiting)
	}
	if response != 1 {
		t.Errorf("Expected average response 1, got %f", response)
	}
	if turnAround != 7 {
		t.Errorf("Expected average turnaround 7, got %f", turnAround)
	}
}

func TestCalculateAverage_Empty(t *testing.T) {
	waiting, response, turnAround := CalculateAverage(nil)
	if waiting != 0 || response != 0 || turnAround != 0 {
		t.Errorf("Expected zeros, got %f %f %f", waiting, response, turnAround)
	}
}
