package quiz

// fallbackBank is a deterministic pool of general technical questions used
// to pad or replace model output. Order matters: padding always draws from
// the front.
var fallbackBank = []Question{
	{
		Question: "What is the time complexity of searching in a balanced Binary Search Tree (BST)?",
		Options:  []string{"O(n)", "O(log n)", "O(1)", "O(n log n)"},
		Correct:  1,
	},
	{
		Question: "Which HTTP status code represents 'Unauthorized'?",
		Options:  []string{"200", "404", "401", "500"},
		Correct:  2,
	},
	{
		Question: "What is the primary purpose of a Load Balancer?",
		Options:  []string{"To encrypt data", "To distribute network traffic across multiple servers", "To store data", "To cache static assets"},
		Correct:  1,
	},
	{
		Question: "In React, what is the purpose of the 'useEffect' hook?",
		Options:  []string{"To manage state", "To handle side effects", "To optimize performance", "To route pages"},
		Correct:  1,
	},
	{
		Question: "What indicates a 'SQL Injection' vulnerability?",
		Options:  []string{"Unvalidated user input used in queries", "Weak passwords", "Lack of HTTPS", "Using NoSQL databases"},
		Correct:  0,
	},
	{
		Question: "What is the difference between TCP and UDP?",
		Options:  []string{"TCP is connectionless, UDP is connection-oriented", "TCP provides reliable delivery, UDP does not", "UDP is slower than TCP", "They are identical"},
		Correct:  1,
	},
	{
		Question: "What does ACID stand for in databases?",
		Options:  []string{"Atomicity, Consistency, Isolation, Durability", "Automated, Consistent, Internal, Data", "Access, Control, Integrated, Design", "Association, Class, Interface, Delegation"},
		Correct:  0,
	},
	{
		Question: "Which design pattern ensures a class has only one instance?",
		Options:  []string{"Factory", "Observer", "Singleton", "Strategy"},
		Correct:  2,
	},
	{
		Question: "What is 'Docker' primarily used for?",
		Options:  []string{"Compiling code", "Containerization of applications", "Database management", "Network security"},
		Correct:  1,
	},
	{
		Question: "In Git, command to retrieve changes from a remote repo?",
		Options:  []string{"git push", "git commit", "git pull", "git merge"},
		Correct:  2,
	},
	{
		Question: "What is a 'deadlock' in operating systems?",
		Options:  []string{"A process terminating unexpectedly", "Two processes waiting for each other to release resources", "Memory leak", "High CPU usage"},
		Correct:  1,
	},
	{
		Question: "Which sorting algorithm has the worst-case complexity of O(n^2)?",
		Options:  []string{"Merge Sort", "Heap Sort", "Bubble Sort", "Quick Sort (with good pivot)"},
		Correct:  2,
	},
	{
		Question: "What is the main advantage of NoSQL over SQL?",
		Options:  []string{"ACID compliance", "Flexible schema and scalability", "Complex joins", "Standardized query language"},
		Correct:  1,
	},
	{
		Question: "What does CORS stand for?",
		Options:  []string{"Cross-Origin Resource Sharing", "Computer Origin Resource Security", "Central Organizational Route Storage", "Client Object Request System"},
		Correct:  0,
	},
	{
		Question: "What is 'Continuous Integration' (CI)?",
		Options:  []string{"Deploying to production manually", "Automatically merging and testing code changes", "Buying new servers", "Hiring more developers"},
		Correct:  1,
	},
	{
		Question: "Which structure uses LIFO (Last In First Out)?",
		Options:  []string{"Queue", "Stack", "Linked List", "Tree"},
		Correct:  1,
	},
	{
		Question: "What is specific to Python's 'GIL'?",
		Options:  []string{"Global Interpreter Lock", "General Interface Logic", "Graphical Input Library", "Generated Intrinsic Link"},
		Correct:  0,
	},
	{
		Question: "What is a 'JWT' used for?",
		Options:  []string{"Encrypting databases", "Stateless authentication", "Compressing images", "Formatting text"},
		Correct:  1,
	},
	{
		Question: "Which generic principle encourages 'Don't Repeat Yourself'?",
		Options:  []string{"KISS", "SOLID", "DRY", "YAGNI"},
		Correct:  2,
	},
	{
		Question: "What is the purpose of 'indexes' in a database?",
		Options:  []string{"To encrypt data", "To speed up data retrieval", "To backup data", "To validate data types"},
		Correct:  1,
	},
	{
		Question: "In Microservices, how do services typically communicate?",
		Options:  []string{"Shared Memory", "Direct Database Access", "APIs (REST/gRPC)", "Global Variables"},
		Correct:  2,
	},
	{
		Question: "What is 'Polyfill' in web development?",
		Options:  []string{"A drawing library", "Code that implements missing features in browsers", "A CSS framework", "A database engine"},
		Correct:  1,
	},
	{
		Question: "What is 'memoization'?",
		Options:  []string{"Writing notes", "Caching results of function calls", "Managing memory manually", "Compressing files"},
		Correct:  1,
	},
	{
		Question: "What is 'Big O' notation used for?",
		Options:  []string{"Describing algorithm efficiency", "Measuring code length", "Counting variables", "Naming classes"},
		Correct:  0,
	},
	{
		Question: "Which IP address is a loopback address?",
		Options:  []string{"192.168.1.1", "127.0.0.1", "8.8.8.8", "255.255.255.0"},
		Correct:  1,
	},
	{
		Question: "What is 'Unit Testing'?",
		Options:  []string{"Testing the whole system", "Testing individual components/functions", "User acceptance testing", "Performance testing"},
		Correct:  1,
	},
}

// FallbackQuestions returns the first n questions from the deterministic
// bank, cycling if n exceeds the pool.
func FallbackQuestions(n int) []Question {
	out := make([]Question, 0, n)
	for len(out) < n {
		remaining := n - len(out)
		if remaining >= len(fallbackBank) {
			out = append(out, fallbackBank...)
			continue
		}
		out = append(out, fallbackBank[:remaining]...)
	}
	return out
}
