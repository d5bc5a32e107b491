// Package io provides JSON import and export of solution sets.
//
// # JSON Format
//
//	{
//	  "run_id": "5f0c...",
//	  "stats": {"expanded": 109, "generated": 108, ...},
//	  "solutions": [
//	    {
//	      "index": 1,
//	      "moves": 15,
//	      "steps": [
//	        {"board": "L1 L2 L3 G0 R3 R2 R1"},
//	        {"board": "L1 L2 G0 L3 R3 R2 R1", "move": {"frog": "L3", "from": 2, "to": 3}},
//	        ...
//	      ]
//	    }
//	  ]
//	}
//
// Boards use the same tokens as the text output. Move objects are written
// for readers of the file; on import they are ignored and every move is
// derived again from consecutive boards, so a hand-edited file with an
// impossible step is rejected by [ReadJSON].
package io
